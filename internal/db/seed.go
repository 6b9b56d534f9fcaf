package db

import "time"

// CuratedJobListings returns the static job listings shown on the jobs
// page. PostedAt values stagger the listings for display ordering.
func CuratedJobListings(now time.Time) []JobListing {
	return []JobListing{
		{
			Title:       "Senior React Developer",
			Company:     "Microsoft",
			Location:    "Bangalore, India",
			Salary:      "₹18,00,000 - ₹25,00,000",
			Type:        "Full-time",
			Description: "Join Microsoft's engineering team to build cutting-edge web applications. Work with React, TypeScript, and modern cloud technologies.",
			Requirements: StringArray{
				"5+ years of React experience",
				"Strong TypeScript knowledge",
				"Experience with microservices",
				"Azure cloud platform knowledge",
			},
			Skills:      StringArray{"React", "TypeScript", "Azure", "Node.js"},
			ExternalURL: "https://linkedin.com/jobs/search/?keywords=React%20Developer",
			PostedAt:    now.Add(-48 * time.Hour),
		},
		{
			Title:       "Full Stack Engineer",
			Company:     "Google",
			Location:    "Hyderabad, India",
			Salary:      "₹20,00,000 - ₹28,00,000",
			Type:        "Full-time",
			Description: "Build scalable web applications at Google. Work on both frontend and backend systems serving billions of users.",
			Requirements: StringArray{
				"4+ years of full-stack development",
				"Proficiency in JavaScript/Python",
				"Database design experience",
				"System design knowledge",
			},
			Skills:      StringArray{"JavaScript", "Python", "GCP", "React"},
			ExternalURL: "https://linkedin.com/jobs/search/?keywords=Full%20Stack%20Engineer",
			PostedAt:    now.Add(-24 * time.Hour),
		},
		{
			Title:       "Frontend Engineer",
			Company:     "Amazon",
			Location:    "Pune, India",
			Salary:      "₹16,00,000 - ₹22,00,000",
			Type:        "Full-time",
			Description: "Create beautiful and performant user interfaces for Amazon's services. Focus on user experience and accessibility.",
			Requirements: StringArray{
				"3+ years of frontend development",
				"Expert CSS/HTML skills",
				"React or Vue.js experience",
				"Performance optimization knowledge",
			},
			Skills:      StringArray{"React", "CSS", "JavaScript", "Web Performance"},
			ExternalURL: "https://linkedin.com/jobs/search/?keywords=Frontend%20Engineer",
			PostedAt:    now.Add(-3 * time.Hour),
		},
		{
			Title:       "Backend Developer",
			Company:     "Flipkart",
			Location:    "Bangalore, India",
			Salary:      "₹14,00,000 - ₹20,00,000",
			Type:        "Full-time",
			Description: "Build robust backend systems and APIs for Flipkart's e-commerce platform handling millions of transactions.",
			Requirements: StringArray{
				"3+ years of backend development",
				"Java or Node.js expertise",
				"Database optimization skills",
				"API design experience",
			},
			Skills:      StringArray{"Java", "Node.js", "PostgreSQL", "Redis"},
			ExternalURL: "https://linkedin.com/jobs/search/?keywords=Backend%20Developer",
			PostedAt:    now.Add(-5 * time.Hour),
		},
		{
			Title:       "DevOps Engineer",
			Company:     "Atlassian",
			Location:    "Remote",
			Salary:      "₹17,00,000 - ₹24,00,000",
			Type:        "Full-time",
			Description: "Manage and optimize cloud infrastructure for Atlassian products. Work with Kubernetes and CI/CD pipelines.",
			Requirements: StringArray{
				"3+ years of DevOps experience",
				"Kubernetes and Docker expertise",
				"CI/CD pipeline management",
				"AWS or GCP experience",
			},
			Skills:      StringArray{"Kubernetes", "Docker", "AWS", "Terraform"},
			ExternalURL: "https://linkedin.com/jobs/search/?keywords=DevOps%20Engineer",
			PostedAt:    now.Add(-7 * 24 * time.Hour),
		},
		{
			Title:       "Product Manager",
			Company:     "Swiggy",
			Location:    "Bangalore, India",
			Salary:      "₹15,00,000 - ₹21,00,000",
			Type:        "Full-time",
			Description: "Drive product strategy and development for Swiggy's mobile and web platforms. Lead cross-functional teams.",
			Requirements: StringArray{
				"3+ years of product management",
				"Data-driven decision making",
				"Mobile app experience",
				"Analytics and metrics expertise",
			},
			Skills:      StringArray{"Product Strategy", "Analytics", "Agile", "Leadership"},
			ExternalURL: "https://linkedin.com/jobs/search/?keywords=Product%20Manager",
			PostedAt:    now.Add(-48 * time.Hour),
		},
	}
}
