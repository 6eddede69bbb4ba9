package model

// InitialResume is the empty editing state created at session start.
func InitialResume() ResumeData {
	cfg := DefaultPhotoConfig()
	return ResumeData{
		PersonalDetails: PersonalDetails{PhotoConfig: &cfg},
		Experience:      []Experience{},
		Education:       []Education{},
		Skills:          []string{},
	}
}

// SampleResume is the demonstration content offered when the editor is
// otherwise empty.
func SampleResume() ResumeData {
	cfg := DefaultPhotoConfig()
	return ResumeData{
		PersonalDetails: PersonalDetails{
			FullName:    "Alex Morgan",
			Email:       "alex.morgan@example.com",
			Phone:       "(555) 123-4567",
			Location:    "San Francisco, CA",
			JobTitle:    "Senior Product Designer",
			Website:     "www.alexmorgan.design",
			PhotoConfig: &cfg,
		},
		Summary: "Creative and detail-oriented Product Designer with over 6 years of experience in building user-centric digital products. Proficient in UI/UX design, prototyping, and design systems. Passionate about solving complex problems through elegant design solutions.",
		Experience: []Experience{
			{
				ID:          "1",
				Company:     "TechFlow Solutions",
				Role:        "Senior UI/UX Designer",
				StartDate:   "2021-03",
				EndDate:     "Present",
				Description: "Lead design for the flagship SaaS product, resulting in a 20% increase in user retention. Managed a team of 3 junior designers and established a comprehensive design system.",
			},
			{
				ID:          "2",
				Company:     "Creative Pulse",
				Role:        "Product Designer",
				StartDate:   "2018-06",
				EndDate:     "2021-02",
				Description: "Collaborated with cross-functional teams to launch mobile applications for fintech clients. Conducted user research and usability testing to inform design decisions.",
			},
		},
		Education: []Education{
			{
				ID:          "1",
				Institution: "Rhode Island School of Design",
				Degree:      "BFA in Graphic Design",
				Year:        "2018",
			},
		},
		Skills: []string{"Figma", "React", "Tailwind CSS", "User Research", "Prototyping", "Adobe Creative Suite"},
	}
}
