package content

import "github.com/mehulkansal/portfolio/internal/icon"

const email = "24kansalmehul@gmail.com"

// Default returns the portfolio content. Each call builds fresh slices so
// callers can't alter what later renders see.
func Default() Site {
	return Site{
		Profile: Profile{
			Name:     "Mehul Kansal",
			Headline: "Software Design Engineer",
			Summary: `Passionate Software Engineer with expertise in full-stack development, machine learning, and enterprise solutions.
Committed to building innovative solutions that drive efficiency and enhance user experience.`,
			PhotoURL:  "assets/profile.svg",
			AvatarURL: "assets/avatar.svg",
			Socials: []SocialProfile{
				{Network: icon.GitHub, URL: "https://github.com/mehulkansal", Label: "GitHub"},
				{Network: icon.LinkedIn, URL: "https://linkedin.com/in/mehulkansal", Label: "LinkedIn"},
				{Network: icon.Mail, URL: "mailto:" + email, Label: "Email"},
			},
		},
		Experience: []Experience{
			{
				DateRange: "July 2023 - Present",
				Title:     "Software Design Engineer",
				Company:   "Newgen Software, Noida",
				Bullets: []string{
					"Integrated GenAI features using React and Spring Boot, boosting system efficiency by 50%",
					"Implemented OAuth 2.0 authentication with Java EE (EJB), enhancing system security by 20%",
					"Resolved 100+ client issues, reducing average ticket resolution time by 30%",
					"Developed graph download feature using Selenium, improving product stability by 25%",
					"Utilized microservices architecture, reducing deployment time by 40%",
					"Led cross-functional teams in implementing CI/CD pipelines, improving deployment reliability",
				},
				Skills: []string{"React", "Spring Boot", "OAuth 2.0", "Java EE", "Microservices", "Selenium", "CI/CD"},
			},
			{
				DateRange: "June 2022 - August 2022",
				Title:     "Summer Intern",
				Company:   "Wipro, Noida",
				Bullets: []string{
					"Contributed to 3+ operational projects, reducing process bottlenecks by 15%",
					"Assisted in developing solutions that streamlined workflows, cutting project delivery time by 10%",
					"Collaborated with senior developers on implementing best practices and code optimization",
					"Participated in Agile ceremonies and contributed to sprint planning and retrospectives",
				},
				Skills: []string{"Java", "Spring", "Agile", "Git", "REST APIs", "Team Collaboration"},
				Side:   SideRight,
			},
		},
		Projects: []Project{
			{
				Title: "NYC Taxi Fare Prediction",
				Description: "Advanced machine learning model achieving 95% accuracy in predicting taxi fares using a million+ record dataset. " +
					"Implemented comprehensive data visualization and analysis tools.",
				ImageURL:  "https://images.unsplash.com/photo-1514214246283-d427a95c5d2f?w=800&h=400&fit=crop",
				Skills:    []string{"Python", "Scikit-learn", "TensorFlow", "Pandas", "Matplotlib", "Plotly"},
				SourceURL: "https://github.com/yourusername/taxi-fare-prediction",
			},
			{
				Title: "Driving Assistant",
				Description: "Innovative web application providing real-time weather updates and intelligent speed suggestions. " +
					"Features an advanced drowsiness detection system with 90% accuracy.",
				ImageURL:  "https://images.unsplash.com/photo-1549317661-bd32c8ce0db2?w=800&h=400&fit=crop",
				Skills:    []string{"React", "Django", "OpenCV", "TensorFlow", "Google APIs", "Real-time Processing"},
				LiveURL:   "https://example.com/driving-assistant",
				SourceURL: "https://github.com/yourusername/driving-assistant",
			},
		},
		Skills: []string{
			"Python", "Java", "JavaScript", "React.js",
			"Spring Boot", "Node.js", "Django", "RESTful APIs",
			"OAuth 2.0", "Microservices", "TensorFlow", "Git",
			"SQL", "MongoDB", "Docker", "Jenkins",
		},
		Achievements: []Achievement{
			{Title: "High Five Award", Description: "Recognized for exceptional teamwork and contributions that improved efficiency by 20%"},
			{Title: "LeetCode Master", Description: "Solved 800+ problems, ranking in top 15% globally"},
			{Title: "Google Hash Code", Description: "Placed in top 15% among 6,000+ participants"},
			{Title: "Competitive Programming", Description: "Consistently ranked in top 5% with 90%+ average score"},
		},
		Education: []Education{
			{
				Degree:      "Bachelor of Technology (Hons.) in Computer Science",
				Institution: "Jaypee University of Information Technology",
				Period:      "Graduated May 2023",
				Grade:       "CGPA: 8.44/10",
				Location:    "Solan, Himachal Pradesh, India",
			},
		},
		Contact: Contact{
			Heading: "Get In Touch",
			Pitch: `Looking for new opportunities to create innovative solutions and make an impact.
Let's connect and build something amazing together!`,
			Email:       email,
			ButtonLabel: "Contact Me",
		},
		Footer: "Mehul Kansal - Built with Go, Gin & Tailwind CSS",
	}
}
