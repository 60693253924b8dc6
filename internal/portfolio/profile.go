package portfolio

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// Profile is the normalized resume data rendered into a portfolio. Every field
// is safe to use as-is: missing or wrong-typed values have been replaced by
// empty defaults.
type Profile struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Bio          string       `json:"bio"`
	Skills       []string     `json:"skills"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	Achievements []string     `json:"achievements"`
	Projects     []Project    `json:"projects"`
}

type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Year   string `json:"year"`
}

type Experience struct {
	Role     string `json:"role"`
	Company  string `json:"company"`
	Duration string `json:"duration"`
	Desc     string `json:"desc"`
}

type Project struct {
	Title       string `json:"title"`
	TechStack   string `json:"techStack"`
	Description string `json:"description"`
}

var errNotObject = errors.New("completion is not a JSON object")

// ParseProfile decodes completion content into a Profile. It fails only when
// the content is not a JSON object; everything inside the object degrades to
// defaults. The decoded document is returned for schema checks.
func ParseProfile(content string) (Profile, map[string]any, error) {
	var doc any
	if err := json.Unmarshal([]byte(stripFences(content)), &doc); err != nil {
		return Profile{}, nil, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return Profile{}, nil, errNotObject
	}
	return normalize(obj), obj, nil
}

func normalize(obj map[string]any) Profile {
	p := Profile{
		Name:         str(obj["name"]),
		Email:        strings.TrimSpace(str(obj["email"])),
		Bio:          str(obj["bio"]),
		Skills:       strs(obj["skills"]),
		Achievements: strs(obj["achievements"]),
		Education:    []Education{},
		Experience:   []Experience{},
		Projects:     []Project{},
	}
	for _, item := range objs(obj["education"]) {
		p.Education = append(p.Education, Education{
			School: str(item["school"]),
			Degree: str(item["degree"]),
			Year:   str(item["year"]),
		})
	}
	for _, item := range objs(obj["experience"]) {
		p.Experience = append(p.Experience, Experience{
			Role:     str(item["role"]),
			Company:  str(item["company"]),
			Duration: str(item["duration"]),
			Desc:     str(item["desc"]),
		})
	}
	for _, item := range objs(obj["projects"]) {
		p.Projects = append(p.Projects, Project{
			Title:       str(item["title"]),
			TechStack:   str(item["techStack"]),
			Description: str(item["description"]),
		})
	}
	return p
}

// str renders scalars as text; null, objects and arrays become "".
func str(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// strs keeps the non-empty scalar items of an array.
func strs(v any) []string {
	out := []string{}
	items, _ := v.([]any)
	for _, item := range items {
		if s := str(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// objs keeps the object items of an array.
func objs(v any) []map[string]any {
	var out []map[string]any
	items, _ := v.([]any)
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// stripFences removes a markdown code fence some models wrap JSON in.
func stripFences(content string) string {
	clean := strings.TrimSpace(content)
	if !strings.HasPrefix(clean, "```") {
		return clean
	}
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
