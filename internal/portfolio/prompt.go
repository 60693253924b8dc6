package portfolio

import "resume-portfolio/internal/llm"

const systemPrompt = `Extract data from this resume and return a JSON object.
Structure:
{
  "name": "string",
  "email": "string",
  "bio": "one sentence professional tagline",
  "skills": ["string"],
  "education": [{"school": "string", "degree": "string", "year": "string"}],
  "experience": [{"role": "string", "company": "string", "duration": "string", "desc": "string"}],
  "achievements": ["string"],
  "projects": [{"title": "string", "techStack": "string", "description": "string"}]
}
Return ONLY valid JSON.`

// BuildPrompt returns the two-turn extraction prompt for the resume text.
// The text is sent as-is, even when blank.
func BuildPrompt(resumeText string) llm.Request {
	return llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: resumeText},
		},
		JSON: true,
	}
}
