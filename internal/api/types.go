package api

import (
	"encoding/json"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User is the profile snapshot returned by the backend.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// The backend is not consistent about the id field: some responses carry
// "id", older ones only the Mongo "_id". Accept either.
func (u *User) UnmarshalJSON(b []byte) error {
	type alias User
	aux := struct {
		*alias
		MongoID string `json:"_id"`
	}{alias: (*alias)(u)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if u.ID == "" {
		u.ID = aux.MongoID
	}
	return nil
}

type Question struct {
	ID             string   `json:"_id,omitempty"`
	Text           string   `json:"text"`
	Type           string   `json:"type"` // mcq, short, long, diagram, code
	Options        []string `json:"options,omitempty"`
	CorrectAnswer  string   `json:"correctAnswer,omitempty"`
	Difficulty     string   `json:"difficulty"` // easy, medium, hard
	Marks          int      `json:"marks"`
	BloomsTaxonomy string   `json:"bloomsTaxonomy,omitempty"`
	Explanation    string   `json:"explanation,omitempty"`
	Topic          string   `json:"topic"`
}

type QuestionPaper struct {
	ID             string     `json:"_id,omitempty"`
	Title          string     `json:"title"`
	Subject        string     `json:"subject"`
	Description    string     `json:"description,omitempty"`
	TotalMarks     int        `json:"totalMarks"`
	Duration       int        `json:"duration"` // minutes
	Questions      []Question `json:"questions"`
	CreatedBy      string     `json:"createdBy,omitempty"`
	Syllabus       []string   `json:"syllabus,omitempty"`
	EducationBoard string     `json:"educationBoard,omitempty"`
	Class          string     `json:"class,omitempty"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

type GenerateParams struct {
	Topic       string `json:"topic"`
	Count       int    `json:"count,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
	Type        string `json:"type,omitempty"`
	BloomsLevel string `json:"bloomsLevel,omitempty"`
	Subject     string `json:"subject,omitempty"`
}

type Solution struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Steps    string `json:"steps,omitempty"`
}

// ActionCounts aggregates per-action usage for analytics views.
type ActionCounts struct {
	CreateQuestion int `json:"create_question"`
	SolveQuestion  int `json:"solve_question"`
	ExportPaper    int `json:"export_paper"`
	UploadPaper    int `json:"upload_paper"`
	Login          int `json:"login"`
	Register       int `json:"register"`
}

type OverallStats struct {
	TotalUsers  int          `json:"totalUsers"`
	TotalPapers int          `json:"totalPapers"`
	Actions     ActionCounts `json:"actions"`
}

type UserStats struct {
	UserID  string       `json:"userId"`
	Papers  int          `json:"papers"`
	Actions ActionCounts `json:"actions"`
}

type ActivityEntry struct {
	Action    string    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type TrendingSubject struct {
	Subject string `json:"subject"`
	Count   int    `json:"count"`
}

type DifficultyStats struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}
