package model

import "time"

type Course struct {
	ID             string    `firestore:"id" json:"id"`
	Faculty        string    `firestore:"faculty" json:"faculty"`
	Department     string    `firestore:"department" json:"department"`
	Degree         string    `firestore:"degree" json:"degree"`
	Subject        string    `firestore:"subject" json:"subject"`
	SubjectCode    string    `firestore:"subjectCode" json:"subject_code"`
	Modality       string    `firestore:"modality" json:"modality"`
	TeacherID      string    `firestore:"teacherId" json:"teacher_id"`
	AcademicPeriod string    `firestore:"academicPeriod" json:"academic_period"`
	AcademicLevel  int       `firestore:"academicLevel" json:"academic_level"`
	CreatedAt      time.Time `firestore:"createdAt" json:"created_at"`
}
