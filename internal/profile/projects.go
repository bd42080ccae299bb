package profile

func defaultProjects() []Project {
	return []Project{
		{
			Slug:    "sita-bi",
			Title:   "SITA-BI Academic Portal",
			Tagline: "Sistem Informasi Tugas Akhir Jurusan Bahasa Inggris Politeknik Negeri Padang",
			Problem: "Jurusan Bahasa Inggris Politeknik Negeri Padang membutuhkan sistem terintegrasi untuk mengelola tugas akhir mahasiswa, mulai dari pengajuan proposal hingga sidang akhir.",
			Role:    "Full-Stack Developer",
			Stack:   []string{"Next.js", "Express.js", "TypeScript", "PostgreSQL", "Docker", "RESTful API"},
			Impact: []string{
				"Mengembangkan 204 API endpoint untuk mengelola seluruh proses tugas akhir",
				"Membangun sistem dengan arsitektur monorepo menggunakan Express.js backend dan Next.js frontend",
				"Mengimplementasikan fitur manajemen bimbingan, penilaian, dan penjadwalan sidang",
			},
			Metrics: &Metrics{
				Performance: "204 API endpoints",
				Users:       235,
			},
			Learnings: []string{"Monorepo architecture", "Complex API design", "Academic workflow automation", "Docker containerization"},
		},
		{
			Slug:    "microservice-2025",
			Title:   "Microservices Architecture 2025",
			Tagline: "Enterprise-grade Microservices System dengan Kubernetes Orchestration",
			Problem: "Membutuhkan sistem enterprise-grade dengan arsitektur microservices untuk Library Management dan E-Commerce Marketplace dengan skalabilitas tinggi.",
			Role:    "DevOps & Backend Engineer",
			Stack:   []string{"Spring Boot", "Kubernetes", "AWS EC2", "Docker", "RabbitMQ", "MongoDB", "PostgreSQL", "Prometheus", "Grafana", "ELK Stack"},
			Impact: []string{
				"Membangun 22 services yang berjalan dalam cluster Kubernetes dengan 16 URL endpoint",
				"Mengimplementasikan CQRS pattern dengan event sourcing menggunakan H2 dan MongoDB",
				"Mengelola infrastruktur 5 × AWS EC2 m7i.large dengan total 10 vCPU dan 40 GB RAM",
				"Mengintegrasikan observability stack: Prometheus, Grafana, dan ELK Stack",
			},
			Metrics: &Metrics{
				Performance: "22 microservices",
				Users:       5,
			},
			Learnings: []string{"Kubernetes orchestration", "CQRS pattern", "Event-driven architecture", "Cloud infrastructure management", "Microservices monitoring"},
		},
		{
			Slug:    "vocalink-kmipn",
			Title:   "VocaLink - Juara 1 Nasional KMIPN VII 2025",
			Tagline: "Platform Bootcamp Berbasis AI Interaktif untuk Pengembangan Talenta Digital Indonesia",
			Problem: "Indonesia membutuhkan platform bootcamp yang dapat mendukung pengembangan talenta digital menuju visi Indonesia Emas 2045 dengan pendekatan AI interaktif.",
			Role:    "Team Lead & Full-Stack Developer",
			Stack:   []string{"Next.js", "TypeScript", "TailwindCSS", "AI/ML", "IoT Integration"},
			Impact: []string{
				"Meraih Juara 1 Nasional Kompetisi Inovasi Politeknik Nasional (KMIPN VII 2025) bidang Perencanaan Bisnis IoT",
				"Mengembangkan platform bootcamp berbasis AI interaktif untuk meningkatkan kualitas pembelajaran",
				"Berkontribusi dalam perencanaan bisnis dan pengembangan produk IoT terintegrasi",
			},
			Metrics: &Metrics{
				Performance: "1st Place National",
			},
			Learnings: []string{"AI-powered education platforms", "IoT business planning", "National competition experience", "Team leadership"},
		},
		{
			Slug:    "pepsikuburger",
			Title:   "PEPSIKUBURGER - Platform Pemerintah",
			Tagline: "Platform Layanan Masyarakat DP3AP2KB Provinsi Sumatera Barat",
			Problem: "DP3AP2KB Sumatera Barat membutuhkan platform digital terintegrasi untuk pelayanan publik yang cepat, transparan, dan mendukung program pemberdayaan perempuan.",
			Role:    "Project Manager & Full-Stack Developer",
			Stack:   []string{"Laravel", "Vue.js", "MySQL", "TailwindCSS", "REST API"},
			Impact: []string{
				"Memimpin tim 4 pengembang dalam pembuatan website resmi pemerintah",
				"Melayani lebih dari 5.000 peserta perempuan dalam program pelatihan pemberdayaan ekonomi",
				"Mengembangkan 11 fitur CRUD dan 16 tools interaktif untuk dashboard admin",
				"Mengimplementasikan fitur pelaporan kasus kekerasan dan sistem pre-test/post-test pelatihan",
			},
			Metrics: &Metrics{
				Performance: "5,000+ users served",
				Users:       5000,
			},
			Learnings: []string{"Government platform development", "Project management", "Team coordination", "Public service digitalization", "Laravel + Vue.js integration"},
		},
	}
}
