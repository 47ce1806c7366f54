package catalog

import (
	"fmt"
	"strings"
)

// Subject is a single course unit within a degree program.
type Subject struct {
	ID          string
	Title       string
	Code        string
	Description string
}

// detailedSubjects holds curated subject lists for popular courses.
// Courses not listed here fall back to generic synthesis.
var detailedSubjects = map[string][]Subject{
	"Computer Science": {
		{ID: "cs1", Title: "Intro to Computer Science", Code: "CSC 101", Description: "History of computing, binary systems, and basic hardware."},
		{ID: "cs2", Title: "Intro to Programming", Code: "CSC 102", Description: "Problem solving using Python and C++."},
		{ID: "cs3", Title: "Digital Logic Design", Code: "CSC 201", Description: "Boolean algebra, logic gates, and circuit design."},
		{ID: "cs4", Title: "Data Structures & Algorithms", Code: "CSC 202", Description: "Arrays, Linked Lists, Stacks, Queues, Trees, and Graphs."},
		{ID: "cs5", Title: "Object-Oriented Programming", Code: "CSC 203", Description: "Classes, Objects, Inheritance, and Polymorphism."},
		{ID: "cs6", Title: "Database Management Systems", Code: "CSC 301", Description: "SQL, NoSQL, Normalization, and ER Diagrams."},
		{ID: "cs7", Title: "Operating Systems", Code: "CSC 302", Description: "Processes, Threads, Scheduling, and Memory Management."},
		{ID: "cs8", Title: "Software Engineering", Code: "CSC 401", Description: "SDLC, Agile methodology, and Project Management."},
		{ID: "math1", Title: "Linear Algebra", Code: "MAT 101", Description: "Vectors, Matrices, and Determinants."},
		{ID: "math2", Title: "Calculus I", Code: "MAT 102", Description: "Limits, Continuity, Differentiation, and Integration."},
	},
	"Law": {
		{ID: "law1", Title: "Nigerian Legal System", Code: "PPL 101", Description: "Sources of Nigerian Law, Courts hierarchy."},
		{ID: "law2", Title: "Legal Methods", Code: "PPL 102", Description: "Legal reasoning, writing, and research."},
		{ID: "law3", Title: "Constitutional Law", Code: "PUL 201", Description: "Separation of powers, Fundamental Human Rights."},
		{ID: "law4", Title: "Law of Contract", Code: "PPL 202", Description: "Offer, Acceptance, Consideration, and Breach."},
		{ID: "law5", Title: "Criminal Law", Code: "PUL 203", Description: "Criminal responsibility, offences against persons and property."},
		{ID: "law6", Title: "Law of Torts", Code: "PPL 301", Description: "Negligence, Nuisance, Defamation, and Trespass."},
		{ID: "law7", Title: "Land Law", Code: "PPL 401", Description: "Customary land tenure, Land Use Act."},
		{ID: "law8", Title: "Equity and Trusts", Code: "PPL 402", Description: "Principles of Equity, Creation of Trusts."},
	},
	"Medicine and Surgery": {
		{ID: "med1", Title: "General Anatomy", Code: "ANA 201", Description: "Gross anatomy of upper and lower limbs."},
		{ID: "med2", Title: "General Physiology", Code: "PHS 201", Description: "Cell physiology, blood, and body fluids."},
		{ID: "med3", Title: "Medical Biochemistry", Code: "BCH 201", Description: "Carbohydrates, Proteins, Lipids metabolism."},
		{ID: "med4", Title: "Neuroanatomy", Code: "ANA 301", Description: "Structure of the nervous system."},
		{ID: "med5", Title: "Pathology", Code: "PAT 301", Description: "General pathology and immunology."},
		{ID: "med6", Title: "Pharmacology", Code: "PHA 301", Description: "Pharmacokinetics and Pharmacodynamics."},
		{ID: "med7", Title: "Microbiology", Code: "MIC 301", Description: "Bacteriology, Virology, and Parasitology."},
	},
	"Accounting": {
		{ID: "acc1", Title: "Principles of Accounting", Code: "ACC 101", Description: "Double entry system, Trial Balance."},
		{ID: "acc2", Title: "Financial Accounting", Code: "ACC 201", Description: "Preparation of financial statements."},
		{ID: "acc3", Title: "Cost Accounting", Code: "ACC 202", Description: "Cost classification, overheads, and job costing."},
		{ID: "acc4", Title: "Management Accounting", Code: "ACC 301", Description: "Budgeting, Variance Analysis, and Decision Making."},
		{ID: "acc5", Title: "Auditing", Code: "ACC 302", Description: "Audit process, internal controls, and ethics."},
		{ID: "acc6", Title: "Taxation", Code: "ACC 401", Description: "Personal and Company Income Tax."},
	},
}

// SubjectsForCourse returns the curated subject list for known courses.
// For any other course it synthesizes eight generic subjects from fixed
// templates. The synthesis is deterministic: the same course name always
// yields the same ordered list.
func SubjectsForCourse(course string) []Subject {
	if subjects, ok := detailedSubjects[course]; ok {
		return subjects
	}
	return genericSubjects(course)
}

// genericSubjects builds the fallback subject list for a course without
// a curated entry. The code prefix is the first three characters of the
// course name, uppercased.
func genericSubjects(course string) []Subject {
	prefix := codePrefix(course)

	return []Subject{
		{ID: "gen1", Title: fmt.Sprintf("Introduction to %s", course), Code: prefix + " 101", Description: fmt.Sprintf("Fundamental concepts and history of %s.", course)},
		{ID: "gen2", Title: fmt.Sprintf("%s Methods", course), Code: prefix + " 102", Description: fmt.Sprintf("Research methods and basic techniques in %s.", course)},
		{ID: "gen3", Title: fmt.Sprintf("Intermediate %s", course), Code: prefix + " 201", Description: fmt.Sprintf("Deep dive into core theories of %s.", course)},
		{ID: "gen4", Title: fmt.Sprintf("Ethics in %s", course), Code: prefix + " 202", Description: "Professional ethics and legal frameworks."},
		{ID: "gen5", Title: fmt.Sprintf("Advanced %s I", course), Code: prefix + " 301", Description: "Complex case studies and advanced theory."},
		{ID: "gen6", Title: fmt.Sprintf("Field Work / Practical %s", course), Code: prefix + " 302", Description: "Practical application of learned concepts."},
		{ID: "gen7", Title: fmt.Sprintf("Research Project in %s", course), Code: prefix + " 401", Description: "Final year research methodology and thesis."},
		{ID: "gen8", Title: fmt.Sprintf("Contemporary Issues in %s", course), Code: prefix + " 402", Description: "Current trends and future outlook."},
	}
}

// codePrefix derives a three-letter department code from a course name.
func codePrefix(course string) string {
	if len(course) > 3 {
		course = course[:3]
	}
	return strings.ToUpper(course)
}
