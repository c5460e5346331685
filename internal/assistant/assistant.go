// Package assistant orchestrates every oracle call praxis makes. Each
// method wraps one prompt: the assistant owns prompt text, temperature
// and token budgets, and defers all output parsing to the parse package
// so malformed completions degrade instead of failing.
package assistant

import (
	"context"
	"fmt"

	"github.com/praxislabs/praxis/internal/llm"
	"github.com/praxislabs/praxis/internal/parse"
)

// Assistant is the oracle-facing half of the tutor. It holds no state
// beyond the provider; persistence belongs to callers.
type Assistant struct {
	provider llm.Provider
}

// New creates an Assistant on top of a configured provider.
func New(provider llm.Provider) *Assistant {
	return &Assistant{provider: provider}
}

const enhanceSystem = `You are an expert programming assistant. Your task is to:
1. Analyze the user's coding request
2. Structure and enhance it for optimal code generation
3. Include specific requirements, edge cases, and expected functionality
4. Format the output as a clear, detailed coding task
5. Include code comments where helpful

DO NOT generate any code yourself. Focus only on improving the prompt.`

// EnhancePrompt rewrites a raw user request into a structured, detailed
// coding task. The result seeds every downstream generation.
func (a *Assistant) EnhancePrompt(ctx context.Context, userPrompt string) (string, error) {
	return a.complete(ctx, "enhance-prompt", enhanceSystem,
		"Enhance this coding prompt for better code generation: "+userPrompt,
		0.3, 4000)
}

const challengeSystem = `You are an educational coding mentor. Given a programming problem:
1. Break down the problem into logical steps
2. Provide clear instructions on what the user should try to implement
3. Mention key concepts, data structures, or algorithms they should consider
4. Include 1-2 helpful tips or hints without directly giving away the solution
5. Suggest resources they might reference for learning (documentation, specific methods, etc.)
6. Encourage them to attempt the solution themselves
7. Format your response conversationally as a supportive mentor would`

// GenerateChallenge turns an enhanced prompt into mentor-style guidance
// that encourages the learner to attempt the problem themselves.
func (a *Assistant) GenerateChallenge(ctx context.Context, enhancedPrompt string) (string, error) {
	return a.complete(ctx, "generate-challenge", challengeSystem, enhancedPrompt, 0.4, 4000)
}

const feedbackSystem = `You are an educational coding mentor reviewing a student's code attempt. Your goal is to provide constructive feedback:
1. Identify what parts of the solution are correct and well-implemented
2. Pinpoint specific issues or bugs in the code
3. Suggest improvements without directly rewriting their code
4. Explain conceptual misunderstandings if present
5. Provide 2-3 specific hints that would help them improve their solution
6. Be encouraging and supportive in your tone
7. Do NOT provide complete code solutions`

// AnalyzeAttempt produces narrative feedback on a learner's submission.
func (a *Assistant) AnalyzeAttempt(ctx context.Context, problemDescription, userCode string) (string, error) {
	user := fmt.Sprintf("Problem description: %s\n\nUser's code attempt:\n```\n%s\n```\n\nPlease analyze this code attempt and provide educational feedback.",
		problemDescription, userCode)
	return a.complete(ctx, "analyze-attempt", feedbackSystem, user, 0.3, 4000)
}

const flowchartSystem = `You are a programming educator. Create a detailed flowchart that:
1. Breaks down the solution approach step-by-step
2. Shows the logical flow of the algorithm
3. Highlights key decision points and processes
4. Is detailed enough to guide implementation without giving exact code
5. Uses proper flowchart conventions
6. Provide ONLY the Mermaid flowchart code without explanations`

// GenerateFlowchart produces a Mermaid diagram of the solution approach.
func (a *Assistant) GenerateFlowchart(ctx context.Context, enhancedPrompt string) (string, error) {
	text, err := a.complete(ctx, "generate-flowchart", flowchartSystem,
		"Create a detailed solution flowchart for this problem:\n\n"+enhancedPrompt,
		0.2, 4000)
	if err != nil {
		return "", err
	}
	return parse.MermaidBlock(text), nil
}

const solutionSystem = `You are an expert code generator creating educational code examples. Given a programming problem:
1. Write clean, efficient, and well-documented code
2. Include detailed comments explaining key concepts and your reasoning
3. Handle edge cases and potential errors
4. Follow best practices for the relevant language/framework
5. Explain your implementation approach`

// GenerateSolution produces the reference solution for a challenge.
// Markdown fences are stripped so the stored solution is plain code.
func (a *Assistant) GenerateSolution(ctx context.Context, enhancedPrompt string) (string, error) {
	text, err := a.complete(ctx, "generate-solution", solutionSystem, enhancedPrompt, 0.2, 8000)
	if err != nil {
		return "", err
	}
	return parse.CodeBlocks(text), nil
}

// complete sends a single-turn prompt and returns the raw completion.
func (a *Assistant) complete(ctx context.Context, purpose, system, user string, temperature float64, maxTokens int) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)
	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", purpose, err)
	}
	return resp.Text(), nil
}
