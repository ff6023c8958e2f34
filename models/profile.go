package models

// UserProfile is the free-form personal and health record kept per user in
// the userProfiles collection. It is merge-updated field by field and has a
// lifecycle independent of appointments.
type UserProfile struct {
	DisplayName        string `firestore:"displayName,omitempty" json:"displayName,omitempty"`
	Email              string `firestore:"email,omitempty" json:"email,omitempty"`
	PhoneNumber        string `firestore:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Address            string `firestore:"address,omitempty" json:"address,omitempty"`
	DateOfBirth        string `firestore:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"`
	Gender             string `firestore:"gender,omitempty" json:"gender,omitempty"`
	Height             string `firestore:"height,omitempty" json:"height,omitempty"`
	Weight             string `firestore:"weight,omitempty" json:"weight,omitempty"`
	DietaryPreferences string `firestore:"dietaryPreferences,omitempty" json:"dietaryPreferences,omitempty"`
	Allergies          string `firestore:"allergies,omitempty" json:"allergies,omitempty"`
	MedicalConditions  string `firestore:"medicalConditions,omitempty" json:"medicalConditions,omitempty"`
	Goals              string `firestore:"goals,omitempty" json:"goals,omitempty"`
	FCMToken           string `firestore:"fcmToken,omitempty" json:"fcmToken,omitempty"`
}
