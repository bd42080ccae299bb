package profile

func defaultSkills() []SkillCategory {
	return []SkillCategory{
		{
			Name: "Frontend Development",
			Items: []string{
				"React",
				"Vue.js",
				"Next.js",
				"TailwindCSS",
				"UI/UX Design",
				"TypeScript / JavaScript",
				"Framer Motion",
				"Responsive Design",
			},
		},
		{
			Name: "Backend Development",
			Items: []string{
				"Express.js",
				"Laravel",
				"Spring Boot",
				"Node.js",
				"RESTful APIs",
				"MySQL / PostgreSQL / MongoDB",
				"Authentication & APIs",
				"PHP",
			},
		},
		{
			Name: "Cloud & DevOps",
			Items: []string{
				"AWS (EC2, Cloud Developing)",
				"Kubernetes",
				"Docker",
				"CI/CD",
				"Microservices Architecture",
				"Git / GitHub",
			},
		},
	}
}
