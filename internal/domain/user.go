package domain

import "sort"

// User is a makerspace member, keyed by college id
type User struct {
	CollegeID     uint64    `json:"college_id" yaml:"college_id"`
	Name          string    `json:"name" yaml:"name"`
	CollegeEmail  string    `json:"college_email" yaml:"college_email"`
	PassedQuizzes []string  `json:"passed_quizzes" yaml:"passed_quizzes"`
	AuthLevel     AuthLevel `json:"auth_level" yaml:"auth_level"`
}

// HasPassedQuiz reports whether quiz is in the user's passed set
func (u *User) HasPassedQuiz(quiz string) bool {
	i := sort.SearchStrings(u.PassedQuizzes, quiz)
	return i < len(u.PassedQuizzes) && u.PassedQuizzes[i] == quiz
}

// SetQuizPassed adds or removes quiz from the passed set, keeping it sorted
func (u *User) SetQuizPassed(quiz string, passed bool) {
	i := sort.SearchStrings(u.PassedQuizzes, quiz)
	present := i < len(u.PassedQuizzes) && u.PassedQuizzes[i] == quiz

	switch {
	case passed && !present:
		u.PassedQuizzes = append(u.PassedQuizzes, "")
		copy(u.PassedQuizzes[i+1:], u.PassedQuizzes[i:])
		u.PassedQuizzes[i] = quiz
	case !passed && present:
		u.PassedQuizzes = append(u.PassedQuizzes[:i], u.PassedQuizzes[i+1:]...)
	}
}

// Normalize sorts and de-duplicates the passed quiz set
func (u *User) Normalize() {
	if len(u.PassedQuizzes) == 0 {
		u.PassedQuizzes = []string{}
		return
	}
	sort.Strings(u.PassedQuizzes)
	out := u.PassedQuizzes[:1]
	for _, q := range u.PassedQuizzes[1:] {
		if q != out[len(out)-1] {
			out = append(out, q)
		}
	}
	u.PassedQuizzes = out
}

// Clone returns a deep copy
func (u User) Clone() User {
	u.PassedQuizzes = append([]string(nil), u.PassedQuizzes...)
	if u.PassedQuizzes == nil {
		u.PassedQuizzes = []string{}
	}
	return u
}

// UserInfo is a user composed with their checkout history
type UserInfo struct {
	Name             string             `json:"name"`
	CollegeID        uint64             `json:"college_id"`
	CollegeEmail     string             `json:"college_email"`
	PassedQuizzes    []string           `json:"passed_quizzes"`
	PendingCheckouts []CheckoutLogEntry `json:"pending_checkouts"`
	AllCheckouts     []CheckoutLogEntry `json:"all_checkouts"`
	AuthLevel        AuthLevel          `json:"auth_level"`
}

// NewUserInfo composes a UserInfo from a user and the two checkout views
func NewUserInfo(u User, pending, all []CheckoutLogEntry) UserInfo {
	u = u.Clone()
	if pending == nil {
		pending = []CheckoutLogEntry{}
	}
	if all == nil {
		all = []CheckoutLogEntry{}
	}
	return UserInfo{
		Name:             u.Name,
		CollegeID:        u.CollegeID,
		CollegeEmail:     u.CollegeEmail,
		PassedQuizzes:    u.PassedQuizzes,
		PendingCheckouts: pending,
		AllCheckouts:     all,
		AuthLevel:        u.AuthLevel,
	}
}
