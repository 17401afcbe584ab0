package config

import (
	"os"
	"sync"
)

type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
}

var (
	firestoreConfig *FirestoreConfig
	firestoreOnce   sync.Once
)

func LoadFirestoreConfig() *FirestoreConfig {
	firestoreOnce.Do(func() {
		firestoreConfig = &FirestoreConfig{
			ProjectID:       os.Getenv("FIRESTORE_PROJECT_ID"),
			CredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		}
	})
	return firestoreConfig
}
