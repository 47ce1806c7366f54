package catalog

// Courses is the list of degree programs offered during onboarding.
// Sorted alphabetically; never mutated at runtime.
var Courses = []string{
	"Accounting",
	"Actuarial Science",
	"Adult Education",
	"Agricultural Economics",
	"Agricultural Extension",
	"Agronomy",
	"Anatomy",
	"Animal Science",
	"Architecture",
	"Banking and Finance",
	"Biochemistry",
	"Biological Sciences",
	"Botany",
	"Building Technology",
	"Business Administration",
	"Chemical Engineering",
	"Chemistry",
	"Civil Engineering",
	"Computer Engineering",
	"Computer Science",
	"Criminology",
	"Dentistry",
	"Economics",
	"Education & Biology",
	"Education & Chemistry",
	"Education & Economics",
	"Education & English",
	"Education & Mathematics",
	"Education & Physics",
	"Electrical/Electronics Engineering",
	"English Language",
	"English Literature",
	"Environmental Management",
	"Estate Management",
	"Fisheries",
	"Food Science and Technology",
	"French",
	"Geography",
	"Geology",
	"Guidance and Counseling",
	"History and International Studies",
	"Human Kinetics",
	"Industrial Chemistry",
	"Industrial Relations and Personnel Management",
	"Insurance",
	"International Relations",
	"Law",
	"Library and Information Science",
	"Linguistics",
	"Marketing",
	"Mass Communication",
	"Mathematics",
	"Mechanical Engineering",
	"Mechatronics Engineering",
	"Medical Laboratory Science",
	"Medicine and Surgery",
	"Microbiology",
	"Music",
	"Nursing Science",
	"Nutrition and Dietetics",
	"Petroleum Engineering",
	"Pharmacy",
	"Philosophy",
	"Physics",
	"Physiology",
	"Physiotherapy",
	"Plant Science",
	"Political Science",
	"Psychology",
	"Public Administration",
	"Public Health",
	"Quantity Surveying",
	"Radiography",
	"Religious Studies",
	"Sociology",
	"Soil Science",
	"Statistics",
	"Surveying and Geoinformatics",
	"Theatre Arts",
	"Urban and Regional Planning",
	"Veterinary Medicine",
	"Zoology",
}
