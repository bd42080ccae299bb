package profile

// Static reference data for the portfolio site. This is the only content the
// assistant is grounded on; nothing here is ever user-supplied.

type Contact struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Location string `json:"location"`
}

type SkillCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

type Metrics struct {
	Performance string `json:"performance,omitempty"`
	Users       int    `json:"users,omitempty"`
	LinesOfCode int    `json:"linesOfCode,omitempty"`
}

type Project struct {
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Tagline   string   `json:"tagline"`
	Problem   string   `json:"problem"`
	Role      string   `json:"role"`
	Stack     []string `json:"stack"`
	Impact    []string `json:"impact,omitempty"`
	Metrics   *Metrics `json:"metrics,omitempty"`
	Learnings []string `json:"learnings,omitempty"`
}

type Data struct {
	Name              string          `json:"name"`
	Headline          string          `json:"headline"`
	Bio               string          `json:"bio"`
	Philosophy        string          `json:"philosophy"`
	TechnicalOpinions string          `json:"technical_opinions"`
	SoftSkills        []string        `json:"soft_skills"`
	Contact           Contact         `json:"contact"`
	Skills            []SkillCategory `json:"skills"`
	Projects          []Project       `json:"projects"`
}

// Default returns the site owner's profile. Category and project order is
// significant: the context assembler and the JSON endpoints both preserve it.
func Default() Data {
	return Data{
		Name:     "Anla Harpanda",
		Headline: "Full Stack Web Developer & UI/UX Designer",
		Bio: `I am Anla Harpanda, a Full Stack Web Developer & UI/UX Designer with the mindset of a founder and the discipline of a craftsman. I build intelligent, user-centric systems that combine engineering, product thinking, and AI capability to solve real problems.

My journey blends software engineering, entrepreneurship, and personal mastery. I care about clarity, architecture, systems design, deliberate practice, and creating products that reflect who I am and who I'm becoming.

I'm driven by curiosity, a relentless desire to grow, and a mission to build tools, ideas, and systems that help people unlock their potential and feel more human.`,
		Philosophy: `- **Deliberate Practice Over Vibe Coding:** Everything I do is intentional. I prefer deep understanding over cargo-cult coding.
- **Product-First Engineering:** I write code with a business purpose solving real problems with measurable impact.
- **AI as a Force Multiplier:** AI should enhance human intelligence, not replace it. My work focuses on building AI agents, RAG systems, and AI-driven products that empower users and automate complexity.
- **Simplicity & Quality:** Clean architecture, clarity of thought, and long-term maintainability matter more than flashy shortcuts.
- **Continuous Reinvention:** I actively study entrepreneurship, psychology, systems thinking, and peak performance to become a disciplined, wise, impactful man.`,
		TechnicalOpinions: `- **Next.js:** My default framework — fast, flexible, and ideal for real products.
- **TailwindCSS:** Enables clean, scalable UI development without UI-library bloat.
- **TypeScript:** Mandatory for serious engineering; reduces entropy and increases confidence.
- **Vercel:** The best deployment platform for modern engineering — developer-first infrastructure.
- **RAG & Agents:** The future of applied AI; key to building differentiated products.`,
		SoftSkills: []string{
			"Analytical Thinking",
			"Systems Thinking",
			"Leadership",
			"Emotional Intelligence",
			"Communication",
			"Resilience",
			"Problem Solving",
			"Adaptability",
			"Strategic Decision Making",
			"Clarity and Focus",
		},
		Contact: Contact{
			Email:    "operation927@gmail.com",
			LinkedIn: "https://www.linkedin.com/in/anlaharpanda",
			GitHub:   "https://github.com/Gojer16",
			Location: "Remote",
		},
		Skills:   defaultSkills(),
		Projects: defaultProjects(),
	}
}
