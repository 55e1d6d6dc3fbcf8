package backend

import "encoding/json"

// User mirrors the backend's profile record. The session layer treats
// it as an opaque blob; handlers decode it only when they need a field.
type User struct {
	ID             int    `json:"id"`
	Fullname       string `json:"fullname"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Phone          string `json:"notelp,omitempty"`
	Institution    string `json:"institution,omitempty"`
	Biography      string `json:"biografi,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	UserRole       string `json:"user_role"` // "dosen" or "mahasiswa"
	IsActive       bool   `json:"is_active"`
	IsVerified     bool   `json:"is_verified"`
	IsSuperuser    bool   `json:"is_superuser"`
	IsOAuthUser    bool   `json:"is_oauth_user,omitempty"`
}

// Raw returns the profile as the opaque JSON blob the session layer
// persists.
func (u User) Raw() (json.RawMessage, error) {
	return json.Marshal(u)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

type RegisterRequest struct {
	Fullname       string `json:"fullname"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	UserRole       string `json:"user_role,omitempty"`
	Phone          string `json:"notelp,omitempty"`
	Institution    string `json:"institution,omitempty"`
	Biography      string `json:"biografi,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

type AuthorizationURLResponse struct {
	AuthorizationURL string `json:"authorization_url"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type UpdateProfileRequest struct {
	Fullname       string `json:"fullname,omitempty"`
	Username       string `json:"username,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"notelp,omitempty"`
	Institution    string `json:"institution,omitempty"`
	Biography      string `json:"biografi,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type CreateClassRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type UpdateClassRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

type JoinClassRequest struct {
	ClassCode string `json:"class_code"`
}

type JoinClassResponse struct {
	Message string `json:"message"`
	ClassID int    `json:"class_id"`
}

type Class struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	ClassCode        string `json:"class_code"`
	TeacherID        int    `json:"teacher_id"`
	TeacherName      string `json:"teacher_name"`
	ParticipantCount int    `json:"participant_count"`
	CreatedAt        string `json:"created_at"`
}

type Participant struct {
	ID       int    `json:"id"`
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	JoinedAt string `json:"joined_at"`
}

type ClassDetail struct {
	Class
	Participants     []Participant `json:"participants"`
	AssignmentsCount int           `json:"assignments_count"`
}

type InviteCodeResponse struct {
	ClassCode  string `json:"class_code"`
	InviteLink string `json:"invite_link"`
	ClassName  string `json:"class_name"`
}

type Question struct {
	ID              int    `json:"id"`
	AssignmentID    int    `json:"assignment_id"`
	QuestionText    string `json:"question_text"`
	ReferenceAnswer string `json:"reference_answer"`
	QuestionOrder   int    `json:"question_order"`
	Points          int    `json:"points"`
}

type CreateAssignmentRequest struct {
	KelasID        int    `json:"kelas_id"`
	Title          string `json:"title"`
	Description    string `json:"description,omitempty"`
	AssignmentType string `json:"assignment_type,omitempty"` // "file_based" or "text_based"
	Deadline       string `json:"deadline,omitempty"`
	MaxScore       int    `json:"max_score,omitempty"`
	MinimalScore   int    `json:"minimal_score,omitempty"`
	Questions      string `json:"questions,omitempty"`
}

type UpdateAssignmentRequest struct {
	Title          string `json:"title,omitempty"`
	Description    string `json:"description,omitempty"`
	AssignmentType string `json:"assignment_type,omitempty"`
	Deadline       string `json:"deadline,omitempty"`
	MaxScore       int    `json:"max_score,omitempty"`
	MinimalScore   int    `json:"minimal_score,omitempty"`
	IsPublished    *bool  `json:"is_published,omitempty"`
	Questions      string `json:"questions,omitempty"`
}

type Assignment struct {
	ID             int        `json:"id"`
	KelasID        int        `json:"kelas_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	AssignmentType string     `json:"assignment_type"`
	Deadline       string     `json:"deadline,omitempty"`
	MaxScore       int        `json:"max_score"`
	MinimalScore   int        `json:"minimal_score"`
	IsPublished    bool       `json:"is_published"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
	Questions      []Question `json:"questions,omitempty"`
}

type AnswerSubmit struct {
	QuestionID int    `json:"question_id"`
	AnswerText string `json:"answer_text"`
}

type SubmitAnswersRequest struct {
	Answers []AnswerSubmit `json:"answers"`
}

type Submission struct {
	ID             int     `json:"id"`
	AssignmentID   int     `json:"assignment_id"`
	StudentID      int     `json:"student_id"`
	StudentName    string  `json:"student_name"`
	SubmissionType string  `json:"submission_type"` // "typed" or "ocr"
	FilePath       string  `json:"file_path,omitempty"`
	SubmittedAt    string  `json:"submitted_at"`
	Score          *float64 `json:"score,omitempty"`
}

type GradeSubmissionRequest struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback,omitempty"`
}

type GradeResponse struct {
	Message string `json:"message"`
	NilaiID int    `json:"nilai_id"`
}

// Grade is the backend's "nilai" record: one graded submission.
type Grade struct {
	ID           int      `json:"id"`
	SubmissionID int      `json:"submission_id"`
	StudentID    int      `json:"student_id"`
	StudentName  string   `json:"student_name"`
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback,omitempty"`
	GradedAt     string   `json:"graded_at"`
	IsAutoGraded bool     `json:"is_auto_graded"`
}

type AutoGradeResponse struct {
	Message  string  `json:"message"`
	NilaiID  int     `json:"nilai_id"`
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback,omitempty"`
}

type AutoGradeAllResponse struct {
	Message      string `json:"message"`
	GradedCount  int    `json:"graded_count"`
	SkippedCount int    `json:"skipped_count"`
}

type AssignmentStatistics struct {
	AssignmentID    int     `json:"assignment_id"`
	SubmissionCount int     `json:"submission_count"`
	GradedCount     int     `json:"graded_count"`
	AverageScore    float64 `json:"average_score"`
	HighestScore    float64 `json:"highest_score"`
	LowestScore     float64 `json:"lowest_score"`
}

type OCRResult struct {
	ID            int    `json:"id"`
	Filename      string `json:"filename"`
	ExtractedText string `json:"extracted_text"`
	CreatedAt     string `json:"created_at"`
}

type SubmitScanResponse struct {
	Message       string `json:"message"`
	SubmissionID  int    `json:"submission_id"`
	ExtractedText string `json:"extracted_text"`
}

type SubmittedAnswer struct {
	QuestionID   int      `json:"question_id"`
	QuestionText string   `json:"question_text"`
	AnswerText   string   `json:"answer_text"`
	FinalScore   *float64 `json:"final_score,omitempty"`
	Feedback     string   `json:"feedback,omitempty"`
}

// MySubmission reports whether the current student already handed in
// an assignment, and the graded answers when they did.
type MySubmission struct {
	Submitted      bool              `json:"submitted"`
	SubmissionID   int               `json:"submission_id,omitempty"`
	SubmissionType string            `json:"submission_type,omitempty"`
	SubmittedAt    string            `json:"submitted_at,omitempty"`
	Answers        []SubmittedAnswer `json:"answers,omitempty"`
	TotalScore     *float64          `json:"total_score,omitempty"`
	MaxScore       *float64          `json:"max_score,omitempty"`
	Percentage     *float64          `json:"percentage,omitempty"`
	Graded         bool              `json:"graded,omitempty"`
}

// QuestionGradeDetail carries the per-question rubric breakdown. The
// rubric field names are the backend's Indonesian ones.
type QuestionGradeDetail struct {
	QuestionID          int      `json:"question_id"`
	QuestionText        string   `json:"question_text"`
	QuestionPoints      int      `json:"question_points"`
	AnswerText          string   `json:"answer_text"`
	FinalScore          *float64 `json:"final_score,omitempty"`
	Feedback            string   `json:"feedback,omitempty"`
	RubricPemahaman     *float64 `json:"rubric_pemahaman,omitempty"`
	RubricKelengkapan   *float64 `json:"rubric_kelengkapan,omitempty"`
	RubricKejelasan     *float64 `json:"rubric_kejelasan,omitempty"`
	RubricAnalisis      *float64 `json:"rubric_analisis,omitempty"`
	RubricRataRata      *float64 `json:"rubric_rata_rata,omitempty"`
	EmbeddingSimilarity *float64 `json:"embedding_similarity,omitempty"`
}

type SubmissionDetail struct {
	SubmissionID    int                   `json:"submission_id"`
	StudentID       int                   `json:"student_id"`
	StudentName     string                `json:"student_name"`
	AssignmentID    int                   `json:"assignment_id"`
	AssignmentTitle string                `json:"assignment_title"`
	SubmissionType  string                `json:"submission_type"`
	SubmittedAt     string                `json:"submitted_at"`
	Graded          bool                  `json:"graded"`
	TotalScore      *float64              `json:"total_score,omitempty"`
	MaxScore        *float64              `json:"max_score,omitempty"`
	Percentage      *float64              `json:"percentage,omitempty"`
	GradedAt        string                `json:"graded_at,omitempty"`
	QuestionDetails []QuestionGradeDetail `json:"question_details"`
}

type DashboardStats struct {
	TotalClasses     int     `json:"total_classes"`
	TotalAssignments int     `json:"total_assignments"`
	TotalSubmissions int     `json:"total_submissions"`
	AverageScore     float64 `json:"average_score"`
}

type RecentActivity struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

type PhotoUploadResponse struct {
	Message  string `json:"message"`
	PhotoURL string `json:"photo_url"`
}
