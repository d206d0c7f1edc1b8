package local

// Store keys. Each collection lives under one key as a JSON array; the
// session slot holds at most one user record, and each registered user gets
// one password slot.
const (
	keyUsers         = "teachdesk_users"
	keyProjects      = "teachdesk_projects"
	keyLessonPlans   = "teachdesk_lesson_plans"
	keyWorksheets    = "teachdesk_worksheets"
	keyParentUpdates = "teachdesk_parent_updates"
	keySession       = "teachdesk_auth"

	passwordKeyPrefix = "password_"
)
