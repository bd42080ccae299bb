// Package prompt builds the grounding document handed to the model as its
// system instruction. It is a pure function of the static profile data, so two
// calls with the same data produce byte-identical output.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"portfolio-backend/internal/profile"
)

// Build renders the context document in fixed section order: preamble,
// biography, philosophy, technical opinions, soft skills, contact, skills by
// category, featured projects, then the response rules.
func Build(d profile.Data) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("You are the AI assistant for %s's portfolio website.\n\n", d.Name))
	b.WriteString(fmt.Sprintf("Your purpose is to help visitors understand who %s is as a **%s**, what he builds, how he thinks, and what value he brings.\n", d.Name, d.Headline))
	b.WriteString("Your tone must be professional, confident, concise, and grounded in real data. Never guess.\n\n")

	section(&b, "Background", d.Bio)
	section(&b, "Philosophy & Working Style", d.Philosophy)
	section(&b, "Technical Opinions & Engineering Principles", d.TechnicalOpinions)
	section(&b, "Soft Skills & Personal Strengths", strings.Join(d.SoftSkills, ", "))

	b.WriteString("---\n\n## Contact\n")
	b.WriteString(fmt.Sprintf("- **Email:** %s\n", d.Contact.Email))
	b.WriteString(fmt.Sprintf("- **LinkedIn:** %s\n", d.Contact.LinkedIn))
	b.WriteString(fmt.Sprintf("- **GitHub:** %s\n\n", d.Contact.GitHub))

	b.WriteString("---\n\n## Technical Skills\n")
	for _, cat := range d.Skills {
		b.WriteString(fmt.Sprintf("%s: %s\n", cat.Name, strings.Join(cat.Items, ", ")))
	}
	b.WriteString("\n")

	b.WriteString("---\n\n## Featured Projects\n")
	for _, p := range d.Projects {
		writeProject(&b, p)
	}

	b.WriteString(`---

# Response Rules (Critical)
1. **Be concise but informative** - aim for clarity, not verbosity.
2. **When asked about a specific project**, rely strictly on the details provided.
3. **When asked about seniority**, emphasize end-to-end product building, system design thinking, AI integration, and rapid learning. Avoid referencing "years of experience."
4. **If a visitor asks for information not included**, say: "I don't have that information available, but you can contact ` + d.Name + ` directly."
5. **Never hallucinate.** Only use what's in the provided context.
6. **Use Markdown formatting** to improve readability (bold, lists, sections).
7. **Keep responses focused on ` + d.Name + `'s expertise, philosophy, and real work.**
`)

	return b.String()
}

func section(b *strings.Builder, title, body string) {
	b.WriteString("---\n\n## ")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n\n")
}

func writeProject(b *strings.Builder, p profile.Project) {
	b.WriteString(fmt.Sprintf("\nProject: %s\n", p.Title))
	b.WriteString(fmt.Sprintf("Tagline: %s\n", p.Tagline))
	b.WriteString(fmt.Sprintf("Description: %s\n", p.Problem))
	b.WriteString(fmt.Sprintf("Role: %s\n", p.Role))
	b.WriteString(fmt.Sprintf("Tech Stack: %s\n", strings.Join(p.Stack, ", ")))
	b.WriteString(fmt.Sprintf("Impact: %s\n", joinOrNA(p.Impact, "; ")))
	b.WriteString(fmt.Sprintf("Metrics: %s\n", metricsOrNA(p.Metrics)))
	b.WriteString(fmt.Sprintf("Learnings: %s\n", joinOrNA(p.Learnings, "; ")))
	b.WriteString(fmt.Sprintf("Link: https://www.linkedin.com/in/anlaharpanda/projects/%s\n", p.Slug))
}

func joinOrNA(items []string, sep string) string {
	if len(items) == 0 {
		return "N/A"
	}
	return strings.Join(items, sep)
}

func metricsOrNA(m *profile.Metrics) string {
	if m == nil {
		return "N/A"
	}
	// Field order is fixed by the struct, so the output stays deterministic.
	data, err := json.Marshal(m)
	if err != nil {
		return "N/A"
	}
	return string(data)
}
