package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/praxislabs/praxis/internal/parse"
)

// ComplexityAnalysis holds the extracted big-O assessment of some code.
// Time and Space fall back to parse.ComplexityUndefined when the oracle
// response contains no recognizable expression.
type ComplexityAnalysis struct {
	Time        string `json:"time_complexity"`
	Space       string `json:"space_complexity"`
	Explanation string `json:"explanation"`
}

// CodeAnalysis is the oracle's structured assessment of submitted code.
type CodeAnalysis struct {
	Skills     map[string]float64 `json:"skills"`
	Quality    float64            `json:"quality"`
	Strengths  []string           `json:"strengths"`
	Weaknesses []string           `json:"weaknesses"`
}

// SkillStanding pairs a skill name with a proficiency for prompts that
// describe the learner's current level.
type SkillStanding struct {
	Name        string
	Proficiency float64
}

const complexitySystem = `You are an algorithm analysis expert. Analyze the provided code and:
1. Determine its time complexity (Big O notation)
2. Determine its space complexity (Big O notation)
3. Explain the reasoning behind your analysis
4. Consider best, average, and worst-case scenarios where applicable
5. Format your response in plain text with clear sections for:
   - Time Complexity: [your analysis]
   - Space Complexity: [your analysis]
   - Explanation: [your explanation]`

// AnalyzeComplexity asks the oracle for a big-O analysis. Extraction is
// total: an unparseable response yields Undefined complexities with the
// raw text kept as the explanation.
func (a *Assistant) AnalyzeComplexity(ctx context.Context, code string) (*ComplexityAnalysis, error) {
	text, err := a.complete(ctx, "analyze-complexity", complexitySystem,
		"Analyze the time and space complexity of this code:\n\n"+code,
		0.1, 4000)
	if err != nil {
		return nil, err
	}
	return &ComplexityAnalysis{
		Time:        parse.Complexity(text, "time"),
		Space:       parse.Complexity(text, "space"),
		Explanation: text,
	}, nil
}

const reviewSystem = `You are an expert code reviewer. Analyze the provided code and:
1. Rate it on a scale of 1-10 for: readability, efficiency, robustness, and maintainability
2. Identify specific strengths in the implementation
3. Highlight areas for improvement with concrete suggestions
4. Suggest optimizations for performance or resource usage
5. Check for potential bugs, edge cases, or security issues
6. Format as JSON with keys: overall_rating, strengths, improvements, optimizations, potential_issues`

// ReviewCode asks the oracle for a structured quality review. When no
// JSON object can be extracted the raw narrative is wrapped under a
// "review" key with an "N/A" rating so callers always get an object.
func (a *Assistant) ReviewCode(ctx context.Context, code string) (json.RawMessage, error) {
	text, err := a.complete(ctx, "review-code", reviewSystem,
		"Review this code and suggest improvements:\n\n"+code,
		0.3, 6000)
	if err != nil {
		return nil, err
	}

	if obj, ok := parse.JSONObject(text); ok {
		return obj, nil
	}
	fallback, err := json.Marshal(map[string]string{
		"overall_rating": "N/A",
		"review":         text,
	})
	if err != nil {
		return nil, fmt.Errorf("review-code: %w", err)
	}
	return fallback, nil
}

const identifySkillsSystem = `You are a programming education expert. Given a coding problem description:
1. Identify the key programming skills and concepts required to solve it
2. Rate each skill's relevance to the problem on a scale of 0.0 to 1.0
3. Return a JSON object where keys are skill names and values are relevance scores
4. Be specific but concise with skill names
5. Include both general programming concepts and specific data structures/algorithms

Example format:
{
    "Arrays": 0.9,
    "String Manipulation": 0.7,
    "Dynamic Programming": 0.5
}`

// IdentifySkills extracts the skill-relevance map for a challenge.
// An unparseable response yields an empty map, never an error.
func (a *Assistant) IdentifySkills(ctx context.Context, enhancedPrompt string) (map[string]float64, error) {
	text, err := a.complete(ctx, "identify-skills", identifySkillsSystem,
		"Analyze this coding problem and identify relevant skills with relevance scores:\n\n"+enhancedPrompt,
		0.2, 1000)
	if err != nil {
		return nil, err
	}
	return parse.SkillMap(text), nil
}

const analyzeCodeSystem = `You are a code analysis expert. Given some code:
1. Identify programming skills and concepts demonstrated in the code
2. Rate each skill's mastery level on a scale of 0.0 to 1.0
3. Provide an overall code quality score from 0.0 to 1.0
4. Return results as a JSON object with these keys:
   - skills: Object mapping skill names to mastery scores
   - quality: Overall quality score
   - strengths: Array of specific strengths in the code
   - weaknesses: Array of specific areas for improvement

Example format:
{
    "skills": {
        "Arrays": 0.8,
        "Functions": 0.7,
        "Error Handling": 0.3
    },
    "quality": 0.6,
    "strengths": ["Good variable names", "Efficient algorithm"],
    "weaknesses": ["Missing error handling", "Could be more modular"]
}`

// AnalyzeCode asks the oracle what skills a submission demonstrates and
// how good it is. An unparseable response degrades to the neutral
// analysis: no skills, quality 0.5.
func (a *Assistant) AnalyzeCode(ctx context.Context, code, language string) (*CodeAnalysis, error) {
	text, err := a.complete(ctx, "analyze-code", analyzeCodeSystem,
		fmt.Sprintf("Analyze this %s code:\n\n%s", language, code),
		0.2, 2000)
	if err != nil {
		return nil, err
	}

	neutral := &CodeAnalysis{
		Skills:     map[string]float64{},
		Quality:    0.5,
		Strengths:  []string{},
		Weaknesses: []string{},
	}
	obj, ok := parse.JSONObject(text)
	if !ok {
		return neutral, nil
	}
	var analysis CodeAnalysis
	if err := json.Unmarshal(obj, &analysis); err != nil {
		return neutral, nil
	}
	if analysis.Skills == nil {
		analysis.Skills = map[string]float64{}
	}
	return &analysis, nil
}

const scoreSystem = `You are an automated code grading system. Compare the user's code with the model solution and:
1. Calculate a similarity score from 0.0 to 1.0
2. Consider functionality over stylistic differences
3. Check if key algorithms and approaches are implemented correctly
4. Ignore minor differences in variable names, whitespace, etc.
5. Return ONLY a number between 0 and 1 representing the score, with no explanation`

// ScoreAttempt grades a submission against the reference solution.
// Extraction is total: any response yields a score, defaulting to 0.5.
func (a *Assistant) ScoreAttempt(ctx context.Context, userCode, solution, language string) (float64, error) {
	user := fmt.Sprintf("User's %s code:\n```\n%s\n```\n\nModel solution:\n```\n%s\n```\n\nPlease score the user's code from 0 to 1.",
		language, userCode, solution)
	text, err := a.complete(ctx, "score-attempt", scoreSystem, user, 0.1, 50)
	if err != nil {
		return 0, err
	}
	return parse.Score(text), nil
}

const assessmentSystem = `You are an educational assessment expert. Based on a user's programming skills data:
1. Analyze their strengths and weaknesses
2. Identify patterns in their coding abilities
3. Suggest specific areas to focus on for improvement
4. Highlight strengths they can leverage
5. Format your response in clear sections without being overly verbose`

// SkillAssessment produces a narrative analysis of the learner's
// strongest and weakest skills.
func (a *Assistant) SkillAssessment(ctx context.Context, strong, weak []SkillStanding) (string, error) {
	user := fmt.Sprintf("User's strongest skills:\n%s\n\nUser's weakest skills:\n%s\n\nPlease provide a comprehensive analysis of the user's coding strengths and weaknesses.",
		formatStandings(strong), formatStandings(weak))
	return a.complete(ctx, "skill-assessment", assessmentSystem, user, 0.3, 2000)
}

const recommendSystem = `You are a programming education expert. Based on a user's weakest skills:
1. Recommend specific learning resources and exercises for improvement
2. Suggest a learning path with concrete next steps
3. Provide practical advice tailored to these specific skill gaps
4. Format your response as a structured learning plan
5. Include both theoretical resources and practical exercises`

// Recommendations produces a tailored study plan for the learner's
// weakest skills.
func (a *Assistant) Recommendations(ctx context.Context, weak []SkillStanding) (string, error) {
	user := fmt.Sprintf("The user needs to improve these skills:\n\n%s\n\nPlease provide tailored learning recommendations.",
		formatStandings(weak))
	return a.complete(ctx, "recommendations", recommendSystem, user, 0.4, 2000)
}

func formatStandings(standings []SkillStanding) string {
	out := ""
	for i, s := range standings {
		if i > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("- %s (proficiency: %.2f)", s.Name, s.Proficiency)
	}
	return out
}
