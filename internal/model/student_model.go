package model

// Student lives in a course's students subcollection; the document id is
// the student id.
type Student struct {
	ID       string `firestore:"id" json:"id"`
	Email    string `firestore:"email" json:"email"`
	Username string `firestore:"username" json:"username"`
	Name     string `firestore:"name" json:"name"`
}
