// Package community defines the social side of the app: the achievement
// feed, community groups, courses with subscriptions, and the professional
// help directory.
package community

import "time"

// Achievement moods and visibilities accepted from clients.
const (
	MoodCelebration = "celebration"
	MoodProgress    = "progress"
	MoodStruggle    = "struggle"
	MoodGratitude   = "gratitude"

	VisibilityPublic    = "public"
	VisibilityCommunity = "community"
)

// ValidMoods enumerates the moods an achievement can carry.
var ValidMoods = map[string]struct{}{
	MoodCelebration: {},
	MoodProgress:    {},
	MoodStruggle:    {},
	MoodGratitude:   {},
}

// ValidVisibilities enumerates who can see an achievement.
var ValidVisibilities = map[string]struct{}{
	VisibilityPublic:    {},
	VisibilityCommunity: {},
}

// Achievement is a shared milestone on the social feed.
type Achievement struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Mood          string    `json:"mood"`
	Visibility    string    `json:"visibility"`
	LikesCount    int       `json:"likesCount"`
	CommentsCount int       `json:"commentsCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UserName      string    `json:"userName"`
	UserAvatar    string    `json:"userAvatar,omitempty"`
}

// NewAchievement is the payload for publishing an achievement.
type NewAchievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Mood        string `json:"mood"`
	Visibility  string `json:"visibility"`
}

// Membership roles within a community.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

// Community is a user-created group around a wellness focus area.
type Community struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	FocusArea   string    `json:"focusArea"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
	MemberCount int       `json:"memberCount"`
	IsMember    bool      `json:"isMember"`
}

// CommunityInput is the payload for creating a community.
type CommunityInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	FocusArea   string `json:"focusArea"`
	IsPrivate   bool   `json:"isPrivate"`
}

// Course is a piece of premium or free learning content.
type Course struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	CoverURL        string    `json:"coverUrl,omitempty"`
	Level           string    `json:"level"`
	DurationMinutes int       `json:"durationMinutes"`
	ModulesCount    int       `json:"modulesCount"`
	IsPremium       bool      `json:"isPremium"`
	Price           float64   `json:"price"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SubscriptionPlan describes a purchasable premium tier.
type SubscriptionPlan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Duration int      `json:"duration"` // months
	Price    float64  `json:"price"`
	Features []string `json:"features"`
	Popular  bool     `json:"popular"`
}

// Subscription statuses.
const (
	SubscriptionNone      = "none"
	SubscriptionActive    = "active"
	SubscriptionExpired   = "expired"
	SubscriptionCancelled = "cancelled"
)

// SubscriptionStatus is a user's current premium standing.
type SubscriptionStatus struct {
	PlanID    string     `json:"planId"`
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// CourseOverview bundles everything the courses screen needs.
type CourseOverview struct {
	Courses      []Course           `json:"courses"`
	Plans        []SubscriptionPlan `json:"plans"`
	Subscription SubscriptionStatus `json:"subscription"`
}

// ProfessionalContact is an entry in the help directory.
type ProfessionalContact struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Specialization []string `json:"specialization"`
	Description    string   `json:"description"`
	Phone          string   `json:"phone,omitempty"`
	Email          string   `json:"email,omitempty"`
	Website        string   `json:"website,omitempty"`
	Location       string   `json:"location"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"reviewCount"`
	Image          string   `json:"image,omitempty"`
	Availability   string   `json:"availability"`
	Languages      []string `json:"languages"`
	Type           string   `json:"type"`
	IsEmergency    bool     `json:"isEmergency"`
}

// EmergencyContact is a crisis line shown alongside the directory.
type EmergencyContact struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Description  string `json:"description"`
	Country      string `json:"country"`
	Available24h bool   `json:"available24h"`
}
