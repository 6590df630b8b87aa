package memory

import (
	"time"

	"github.com/ai-buddy/student-support-service/internal/models"
)

// Demo credentials. Plaintext secrets are intentional here; the directory is
// a fixed demo dataset, not real user data.
func seedCredentials() []models.CredentialEntry {
	return []models.CredentialEntry{
		{
			Email:  "student1@demo.com",
			Secret: "student123",
			Account: models.Account{
				ID:        "1",
				Email:     "student1@demo.com",
				Name:      "Rahul Kumar",
				Role:      models.RoleStudent,
				IsPremium: false,
				CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Student: &models.StudentProfile{
					Grade:           "12th",
					Stream:          models.StreamPCM,
					SchoolName:      "Delhi Public School",
					GuardianContact: "+91-9876543210",
					EnrolledCourses: []string{"math-12", "physics-12"},
					Progress:        []models.CourseProgress{},
				},
			},
		},
		{
			Email:  "student2@demo.com",
			Secret: "student123",
			Account: models.Account{
				ID:        "2",
				Email:     "student2@demo.com",
				Name:      "Priya Sharma",
				Role:      models.RoleStudent,
				IsPremium: true,
				CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				Student: &models.StudentProfile{
					Grade:           "11th",
					Stream:          models.StreamCommerce,
					SchoolName:      "St. Mary's School",
					GuardianContact: "+91-9876543211",
					EnrolledCourses: []string{"accounts-11", "economics-11"},
					Progress:        []models.CourseProgress{},
				},
			},
		},
		{
			Email:  "student3@demo.com",
			Secret: "student123",
			Account: models.Account{
				ID:        "3",
				Email:     "student3@demo.com",
				Name:      "Amit Patel",
				Role:      models.RoleStudent,
				IsPremium: false,
				CreatedAt: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
				Student: &models.StudentProfile{
					Grade:           "10th",
					Stream:          models.StreamPCB,
					SchoolName:      "Kendriya Vidyalaya",
					GuardianContact: "+91-9876543212",
					EnrolledCourses: []string{"biology-10", "chemistry-10"},
					Progress:        []models.CourseProgress{},
				},
			},
		},
		{
			Email:  "teacher1@demo.com",
			Secret: "teacher123",
			Account: models.Account{
				ID:        "4",
				Email:     "teacher1@demo.com",
				Name:      "Dr. Sunita Verma",
				Role:      models.RoleTeacher,
				IsPremium: true,
				CreatedAt: time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
				Teacher: &models.TeacherProfile{
					Subjects:       []string{"Mathematics", "Physics"},
					Qualification:  "M.Sc. Physics, B.Ed",
					Experience:     15,
					SchoolName:     "Delhi Public School",
					CreatedCourses: []string{"math-12", "physics-12"},
					StudentsCount:  150,
				},
			},
		},
		{
			Email:  "teacher2@demo.com",
			Secret: "teacher123",
			Account: models.Account{
				ID:        "5",
				Email:     "teacher2@demo.com",
				Name:      "Prof. Rajesh Gupta",
				Role:      models.RoleTeacher,
				IsPremium: true,
				CreatedAt: time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC),
				Teacher: &models.TeacherProfile{
					Subjects:       []string{"Accountancy", "Economics"},
					Qualification:  "M.Com, MBA",
					Experience:     12,
					SchoolName:     "St. Mary's School",
					CreatedCourses: []string{"accounts-11", "economics-11"},
					StudentsCount:  120,
				},
			},
		},
	}
}

func seedCourses() []models.Course {
	return []models.Course{
		{
			ID:               "math-12",
			Title:            "Advanced Mathematics for JEE/NEET",
			Description:      "Complete calculus, algebra, and trigonometry for competitive exams",
			Stream:           models.StreamPCM,
			Grade:            "12th",
			Subject:          "Mathematics",
			TeacherID:        "4",
			TeacherName:      "Dr. Sunita Verma",
			Duration:         "6 months",
			EnrolledStudents: 1250,
			Rating:           4.8,
			IsPremium:        true,
			Price:            2999,
			CreatedAt:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:               "physics-12",
			Title:            "Physics Mastery - Mechanics & Waves",
			Description:      "Master physics concepts with practical experiments and problem solving",
			Stream:           models.StreamPCM,
			Grade:            "12th",
			Subject:          "Physics",
			TeacherID:        "4",
			TeacherName:      "Dr. Sunita Verma",
			Duration:         "8 months",
			EnrolledStudents: 980,
			Rating:           4.9,
			IsPremium:        true,
			Price:            3499,
			CreatedAt:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:               "biology-10",
			Title:            "Biology Fundamentals",
			Description:      "Life processes, genetics, and human body systems explained simply",
			Stream:           models.StreamPCB,
			Grade:            "10th",
			Subject:          "Biology",
			TeacherID:        "5",
			TeacherName:      "Dr. Meera Singh",
			Duration:         "4 months",
			EnrolledStudents: 750,
			Rating:           4.7,
			IsPremium:        false,
			Price:            0,
			CreatedAt:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:               "accounts-11",
			Title:            "Accountancy for Commerce Students",
			Description:      "Double entry bookkeeping, financial statements, and business accounting",
			Stream:           models.StreamCommerce,
			Grade:            "11th",
			Subject:          "Accountancy",
			TeacherID:        "5",
			TeacherName:      "Prof. Rajesh Gupta",
			Duration:         "5 months",
			EnrolledStudents: 650,
			Rating:           4.6,
			IsPremium:        true,
			Price:            1999,
			CreatedAt:        time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:               "english-8",
			Title:            "English Grammar & Literature",
			Description:      "Improve reading, writing, and comprehension skills",
			Stream:           models.StreamMiddle,
			Grade:            "8th",
			Subject:          "English",
			TeacherID:        "6",
			TeacherName:      "Ms. Priya Sharma",
			Duration:         "3 months",
			EnrolledStudents: 450,
			Rating:           4.5,
			IsPremium:        false,
			Price:            0,
			CreatedAt:        time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:               "nursery-basics",
			Title:            "Fun Learning for Little Ones",
			Description:      "Colors, shapes, numbers, and alphabets through games and activities",
			Stream:           models.StreamNursery,
			Grade:            "Nursery",
			Subject:          "General",
			TeacherID:        "7",
			TeacherName:      "Ms. Anjali Patel",
			Duration:         "2 months",
			EnrolledStudents: 320,
			Rating:           4.9,
			IsPremium:        true,
			Price:            999,
			CreatedAt:        time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedPathwayCategories() []models.PathwayCategory {
	return []models.PathwayCategory{
		{ID: "government", Label: "Government Jobs"},
		{ID: "technical", Label: "Technical Skills"},
		{ID: "healthcare", Label: "Healthcare"},
		{ID: "education", Label: "Education"},
	}
}

func seedPathways() map[string][]models.CareerPathway {
	return map[string][]models.CareerPathway{
		"government": {
			{
				ID:           "upsc",
				Title:        "UPSC Civil Services",
				Description:  "Join the Indian Administrative Service and make a difference",
				Category:     "government",
				Duration:     "12-18 months",
				Difficulty:   "High",
				Salary:       "₹56,100 - ₹2,50,000/month",
				Eligibility:  "Graduation in any stream",
				Steps:        []string{"Prelims Preparation", "Mains Preparation", "Interview Training"},
				Scholarships: "Minority scholarship, Merit scholarships available",
				Locations:    []string{"All India"},
				Trending:     true,
			},
			{
				ID:           "banking",
				Title:        "Banking (IBPS/SBI)",
				Description:  "Secure career in public sector banks",
				Category:     "government",
				Duration:     "6-12 months",
				Difficulty:   "Medium",
				Salary:       "₹23,700 - ₹69,600/month",
				Eligibility:  "Graduation in any field",
				Steps:        []string{"Basic Math & English", "Banking Awareness", "Interview Prep"},
				Scholarships: "IBPS fee waiver for SC/ST/PWD",
				Locations:    []string{"All India"},
				Trending:     false,
			},
			{
				ID:           "railway",
				Title:        "Railway Jobs (RRB)",
				Description:  "Join Indian Railways in technical or non-technical roles",
				Category:     "government",
				Duration:     "4-8 months",
				Difficulty:   "Medium",
				Salary:       "₹18,000 - ₹65,000/month",
				Eligibility:  "10th/12th/ITI/Graduation",
				Steps:        []string{"Trade-specific preparation", "Physical fitness", "Document verification"},
				Scholarships: "Fee concession for reserved categories",
				Locations:    []string{"All India"},
				Trending:     true,
			},
		},
		"technical": {
			{
				ID:           "software",
				Title:        "Software Development",
				Description:  "Build applications and websites for global companies",
				Category:     "technical",
				Duration:     "6-12 months",
				Difficulty:   "Medium",
				Salary:       "₹25,000 - ₹1,00,000/month",
				Eligibility:  "Any background (self-learnable)",
				Steps:        []string{"Programming basics", "Framework learning", "Portfolio building"},
				Scholarships: "Many free courses available on Coursera, edX",
				Locations:    []string{"Major cities", "Remote work"},
				Trending:     true,
			},
			{
				ID:           "digital-marketing",
				Title:        "Digital Marketing",
				Description:  "Help businesses grow their online presence",
				Category:     "technical",
				Duration:     "3-6 months",
				Difficulty:   "Low",
				Salary:       "₹20,000 - ₹75,000/month",
				Eligibility:  "Basic computer knowledge",
				Steps:        []string{"Digital marketing basics", "Tool mastery", "Certification"},
				Scholarships: "Google Digital Skills scholarship available",
				Locations:    []string{"All cities"},
				Trending:     false,
			},
		},
		"healthcare": {
			{
				ID:           "nursing",
				Title:        "ANM/GNM Nursing",
				Description:  "Healthcare support with good job security",
				Category:     "healthcare",
				Duration:     "18 months - 3 years",
				Difficulty:   "Medium",
				Salary:       "₹15,000 - ₹45,000/month",
				Eligibility:  "10th/12th pass",
				Steps:        []string{"Course admission", "Practical training", "Registration"},
				Scholarships: "Central/State nursing scholarships available",
				Locations:    []string{"All cities"},
				Trending:     false,
			},
			{
				ID:           "pharmacy",
				Title:        "Pharmacy",
				Description:  "Work in pharmaceutical industry or start your own shop",
				Category:     "healthcare",
				Duration:     "2-4 years",
				Difficulty:   "Medium",
				Salary:       "₹18,000 - ₹60,000/month",
				Eligibility:  "12th with PCM/PCB",
				Steps:        []string{"D.Pharma/B.Pharma", "Internship", "License acquisition"},
				Scholarships: "Merit-based pharmacy scholarships",
				Locations:    []string{"All cities"},
				Trending:     false,
			},
		},
		"education": {
			{
				ID:           "teaching",
				Title:        "Teaching (TET/CTET)",
				Description:  "Shape young minds as a government school teacher",
				Category:     "education",
				Duration:     "2-4 years",
				Difficulty:   "Medium",
				Salary:       "₹25,000 - ₹80,000/month",
				Eligibility:  "Graduation + B.Ed",
				Steps:        []string{"B.Ed completion", "TET qualification", "Job application"},
				Scholarships: "Teacher training scholarships available",
				Locations:    []string{"All states"},
				Trending:     false,
			},
		},
	}
}

func seedWellnessTools() []models.WellnessTool {
	return []models.WellnessTool{
		{ID: "breathing", Title: "Guided Breathing", Description: "Simple breathing exercises to reduce stress and anxiety"},
		{ID: "meditation", Title: "Mindfulness Meditation", Description: "5-minute meditation sessions for mental clarity"},
		{ID: "affirmations", Title: "Daily Affirmations", Description: "Positive self-talk to boost confidence and self-esteem"},
		{ID: "journal", Title: "Mood Journaling", Description: "Track your emotions and identify patterns"},
	}
}

func seedAffirmations() []models.Affirmation {
	return []models.Affirmation{
		{Hindi: "मैं capable हूँ और मैं अपने goals achieve कर सकता हूँ", English: "I am capable and I can achieve my goals"},
		{Hindi: "मैं love और success के लायक हूँ", English: "I am worthy of love and success"},
		{Hindi: "हर challenge एक opportunity है सीखने की", English: "Every challenge is an opportunity to learn"},
		{Hindi: "मैं peace choose करता हूँ worry के बजाय", English: "I choose peace over worry"},
		{Hindi: "मैं strong हूँ और मैं इस tough time से निकल सकूंगा", English: "I am strong and I can get through this tough time"},
		{Hindi: "मेरी potential limitless है", English: "My potential is limitless"},
	}
}

func seedCrisisResources() []models.CrisisResource {
	return []models.CrisisResource{
		{Name: "iCall Helpline", Number: "9152987821", Hours: "10 AM - 8 PM"},
		{Name: "NIMHANS Helpline", Number: "080-26995000", Hours: "24x7"},
		{Name: "Sneha India", Number: "91-44-24640050", Hours: "24x7"},
		{Name: "Vandrevala Foundation", Number: "18602662345", Hours: "24x7"},
	}
}
