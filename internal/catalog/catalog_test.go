package catalog

import (
	"reflect"
	"testing"
)

func TestSubjectsForCourse_Curated(t *testing.T) {
	subjects := SubjectsForCourse("Computer Science")

	if len(subjects) != 10 {
		t.Fatalf("expected 10 curated subjects, got %d", len(subjects))
	}
	if subjects[0].Code != "CSC 101" {
		t.Errorf("first code = %q, want CSC 101", subjects[0].Code)
	}
	if subjects[3].Title != "Data Structures & Algorithms" {
		t.Errorf("unexpected subject order: %q", subjects[3].Title)
	}
}

func TestSubjectsForCourse_GenericDeterministic(t *testing.T) {
	first := SubjectsForCourse("Nutrition and Dietetics")
	second := SubjectsForCourse("Nutrition and Dietetics")

	if len(first) != 8 {
		t.Fatalf("expected 8 generic subjects, got %d", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("generic synthesis is not deterministic")
	}
	for _, sub := range first {
		if sub.Code[:3] != "NUT" {
			t.Errorf("code %q does not carry the NUT prefix", sub.Code)
		}
	}
	if first[0].Title != "Introduction to Nutrition and Dietetics" {
		t.Errorf("first title = %q", first[0].Title)
	}
}

func TestSubjectsForCourse_ShortName(t *testing.T) {
	subjects := SubjectsForCourse("AI")
	if subjects[0].Code != "AI 101" {
		t.Errorf("short course code = %q, want \"AI 101\"", subjects[0].Code)
	}
}

func TestLibraryItems_All(t *testing.T) {
	items := LibraryItems(KindAll)
	if len(items) != 8 {
		t.Fatalf("expected all 8 items, got %d", len(items))
	}
}

func TestLibraryItems_KindFilter(t *testing.T) {
	handouts := LibraryItems(KindHandout)
	if len(handouts) != 1 {
		t.Fatalf("expected 1 handout, got %d", len(handouts))
	}
	if handouts[0].Course != "Other" {
		t.Errorf("general material should pass the kind filter, got course %q", handouts[0].Course)
	}

	past := LibraryItems(KindPastQuestion)
	if len(past) != 1 || past[0].ID != "2" {
		t.Errorf("unexpected past question result: %+v", past)
	}
}

func TestLibraryItems_IgnoresCourse(t *testing.T) {
	// The filter is kind-only: textbooks from every course are returned.
	books := LibraryItems(KindTextbook)
	courses := map[string]bool{}
	for _, b := range books {
		courses[b.Course] = true
	}
	if len(courses) < 4 {
		t.Errorf("textbook filter should span courses, got %v", courses)
	}
}

func TestQuestions_FixedBank(t *testing.T) {
	qs := Questions()
	if len(qs) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qs))
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Errorf("question %d has ID %d", i, q.ID)
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			t.Errorf("question %d correct index %d out of range", q.ID, q.CorrectAnswer)
		}
	}

	// Callers get a copy, not the bank itself.
	qs[0].Question = "mutated"
	if Questions()[0].Question == "mutated" {
		t.Error("Questions returned shared backing storage")
	}
}
