package models

// EducationLevels lists the accepted answers for the questionnaire's first
// step.
func EducationLevels() []string {
	return []string{"High school", "Under graduate", "Post graduate"}
}

// KnowledgeLevels lists the accepted answers for the questionnaire's third
// step.
func KnowledgeLevels() []string {
	return []string{"Beginner", "Intermediate", "Advanced"}
}

// LearningStyles lists the accepted answers for the questionnaire's fourth
// step, identical to the VAKG categories.
func LearningStyles() []string {
	styles := make([]string, 0, 4)
	for _, c := range Categories() {
		styles = append(styles, string(c))
	}
	return styles
}

// TrendingCourses returns the fixture deck shown on the dashboard's
// trending rail. The backend has no trending endpoint, so the entries
// are static.
func TrendingCourses() []Course {
	return []Course{
		{
			Title:      "Advanced Deep Learning",
			Category:   Visual,
			ShortIntro: "Master deep learning techniques with practical exercises and real-world applications.",
		},
		{
			Title:      "Data Storytelling",
			Category:   Auditory,
			ShortIntro: "Learn to communicate data insights effectively through compelling narratives.",
		},
		{
			Title:      "Hands-on Robotics",
			Category:   Kinesthetic,
			ShortIntro: "Build your own robots and learn mechanical engineering principles through practice.",
		},
	}
}

// Domains lists every course domain the backend recognizes as a
// Sub_Category.
func Domains() []string {
	return []string{
		"Machine Learning", "Data Analysis", "Business Essentials", "Data Management",
		"Security", "Software Development", "Design and Product", "Cloud Computing",
		"Mobile and Web Development", "Algorithms", "Finance", "Leadership and Management",
		"Music and Art", "Learning English", "Entrepreneurship", "Marketing",
		"Business Strategy", "Personal Development", "Governance and Society",
		"Healthcare Management", "Networking", "Education", "Computer Security and Networks",
		"Nutrition", "Public Health", "Probability and Statistics", "Electrical Engineering",
		"Basic Science", "Patient Care", "Health Informatics", "Philosophy",
		"Environmental Science and Sustainability", "Math and Logic", "Other Languages",
		"Psychology", "Mechanical Engineering", "Physics and Astronomy", "Law",
		"Biology", "Support and Operations", "Research Methods", "Research",
		"Economics", "Chemistry", "History",
	}
}
