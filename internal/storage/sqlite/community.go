package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wellquest/internal/community"
)

const anonymousName = "Anonymous member"

// ListAchievements returns the shared achievement feed, newest first.
func (s *Store) ListAchievements(ctx context.Context) ([]community.Achievement, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT a.id, a.user_id, a.title, a.description, a.mood, a.visibility,
        a.likes_count, a.comments_count, a.created_at,
        COALESCE(p.full_name, ?), COALESCE(p.avatar_url, '')
        FROM achievements a LEFT JOIN profiles p ON p.id = a.user_id
        ORDER BY a.created_at DESC, a.rowid DESC`, anonymousName)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var feed []community.Achievement
	for rows.Next() {
		var a community.Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Mood, &a.Visibility,
			&a.LikesCount, &a.CommentsCount, &a.CreatedAt, &a.UserName, &a.UserAvatar); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		feed = append(feed, a)
	}
	return feed, rows.Err()
}

// CreateAchievement publishes a milestone to the feed.
func (s *Store) CreateAchievement(ctx context.Context, userID string, in community.NewAchievement) (community.Achievement, error) {
	if strings.TrimSpace(in.Title) == "" {
		return community.Achievement{}, fmt.Errorf("achievement title must not be empty")
	}
	if _, ok := community.ValidMoods[in.Mood]; !ok {
		in.Mood = community.MoodProgress
	}
	if _, ok := community.ValidVisibilities[in.Visibility]; !ok {
		in.Visibility = community.VisibilityPublic
	}

	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `INSERT INTO achievements(id, user_id, title, description, mood, visibility)
        VALUES(?, ?, ?, ?, ?, ?)`, id, userID, strings.TrimSpace(in.Title), strings.TrimSpace(in.Description), in.Mood, in.Visibility)
	if err != nil {
		return community.Achievement{}, fmt.Errorf("insert achievement: %w", err)
	}
	return s.getAchievement(ctx, id)
}

// LikeAchievement bumps the like counter of a feed entry.
func (s *Store) LikeAchievement(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE achievements SET likes_count = likes_count + 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("like achievement: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("achievement not found")
	}
	return nil
}

func (s *Store) getAchievement(ctx context.Context, id string) (community.Achievement, error) {
	var a community.Achievement
	err := s.db.QueryRowContext(ctx, `SELECT a.id, a.user_id, a.title, a.description, a.mood, a.visibility,
        a.likes_count, a.comments_count, a.created_at,
        COALESCE(p.full_name, ?), COALESCE(p.avatar_url, '')
        FROM achievements a LEFT JOIN profiles p ON p.id = a.user_id WHERE a.id = ?`, anonymousName, id).
		Scan(&a.ID, &a.UserID, &a.Title, &a.Description, &a.Mood, &a.Visibility,
			&a.LikesCount, &a.CommentsCount, &a.CreatedAt, &a.UserName, &a.UserAvatar)
	if errors.Is(err, sql.ErrNoRows) {
		return community.Achievement{}, fmt.Errorf("achievement not found")
	}
	if err != nil {
		return community.Achievement{}, fmt.Errorf("get achievement: %w", err)
	}
	return a, nil
}

// ListCommunities returns all groups with member counts and whether the
// given user belongs to each.
func (s *Store) ListCommunities(ctx context.Context, userID string) ([]community.Community, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT c.id, c.name, c.description, c.focus_area, c.owner_id, c.created_at,
        COUNT(m.user_id),
        COALESCE(MAX(CASE WHEN m.user_id = ? THEN 1 ELSE 0 END), 0)
        FROM communities c LEFT JOIN community_members m ON m.community_id = c.id
        GROUP BY c.id ORDER BY c.created_at DESC, c.rowid DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list communities: %w", err)
	}
	defer rows.Close()

	var groups []community.Community
	for rows.Next() {
		var g community.Community
		var isMember int
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.FocusArea, &g.OwnerID, &g.CreatedAt,
			&g.MemberCount, &isMember); err != nil {
			return nil, fmt.Errorf("scan community: %w", err)
		}
		g.IsMember = isMember == 1
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// CreateCommunity creates a group and enrolls the creator as owner.
func (s *Store) CreateCommunity(ctx context.Context, ownerID string, in community.CommunityInput) (community.Community, error) {
	if strings.TrimSpace(in.Name) == "" {
		return community.Community{}, fmt.Errorf("community name must not be empty")
	}
	if strings.TrimSpace(in.FocusArea) == "" {
		in.FocusArea = "General"
	}

	id := uuid.NewString()
	isPrivate := 0
	if in.IsPrivate {
		isPrivate = 1
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO communities(id, name, description, focus_area, is_private, owner_id)
        VALUES(?, ?, ?, ?, ?, ?)`, id, strings.TrimSpace(in.Name), strings.TrimSpace(in.Description), in.FocusArea, isPrivate, ownerID)
	if err != nil {
		return community.Community{}, fmt.Errorf("insert community: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO community_members(community_id, user_id, role) VALUES(?, ?, ?)`,
		id, ownerID, community.RoleOwner)
	if err != nil {
		return community.Community{}, fmt.Errorf("insert owner membership: %w", err)
	}

	var g community.Community
	err = s.db.QueryRowContext(ctx, `SELECT id, name, description, focus_area, owner_id, created_at
        FROM communities WHERE id = ?`, id).
		Scan(&g.ID, &g.Name, &g.Description, &g.FocusArea, &g.OwnerID, &g.CreatedAt)
	if err != nil {
		return community.Community{}, fmt.Errorf("get community: %w", err)
	}
	g.MemberCount = 1
	g.IsMember = true
	return g, nil
}

// JoinCommunity enrolls a user as a regular member. Joining twice is a
// no-op.
func (s *Store) JoinCommunity(ctx context.Context, userID, communityID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM communities WHERE id = ?`, communityID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check community: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("community not found")
	}

	_, err = s.db.ExecContext(ctx, `INSERT OR IGNORE INTO community_members(community_id, user_id, role)
        VALUES(?, ?, ?)`, communityID, userID, community.RoleMember)
	if err != nil {
		return fmt.Errorf("join community: %w", err)
	}
	return nil
}

// LeaveCommunity removes a user's membership.
func (s *Store) LeaveCommunity(ctx context.Context, userID, communityID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM community_members WHERE community_id = ? AND user_id = ?`,
		communityID, userID)
	if err != nil {
		return fmt.Errorf("leave community: %w", err)
	}
	return nil
}

// CourseOverview loads the courses screen: catalog, plans, and the
// caller's subscription standing.
func (s *Store) CourseOverview(ctx context.Context, userID string) (community.CourseOverview, error) {
	courses, err := s.listCourses(ctx)
	if err != nil {
		return community.CourseOverview{}, err
	}
	plans, err := s.listPlans(ctx)
	if err != nil {
		return community.CourseOverview{}, err
	}
	sub, err := s.GetSubscription(ctx, userID)
	if err != nil {
		return community.CourseOverview{}, err
	}
	return community.CourseOverview{Courses: courses, Plans: plans, Subscription: sub}, nil
}

func (s *Store) listCourses(ctx context.Context) ([]community.Course, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, title, description, category, cover_url, level,
        duration_minutes, modules_count, is_premium, price, created_at
        FROM courses ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []community.Course
	for rows.Next() {
		var c community.Course
		var premium int
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Category, &c.CoverURL, &c.Level,
			&c.DurationMinutes, &c.ModulesCount, &premium, &c.Price, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		c.IsPremium = premium == 1
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

func (s *Store) listPlans(ctx context.Context) ([]community.SubscriptionPlan, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, duration_months, price, features, popular
        FROM subscription_plans ORDER BY price ASC`)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []community.SubscriptionPlan
	for rows.Next() {
		var p community.SubscriptionPlan
		var features string
		var popular int
		if err := rows.Scan(&p.ID, &p.Name, &p.Duration, &p.Price, &features, &popular); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		p.Features = splitList(features)
		p.Popular = popular == 1
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// GetSubscription returns the user's latest subscription, downgrading
// lapsed ones to expired.
func (s *Store) GetSubscription(ctx context.Context, userID string) (community.SubscriptionStatus, error) {
	var sub community.SubscriptionStatus
	var expires sql.NullTime
	err := s.db.QueryRowContext(ctx, `SELECT plan_id, status, expires_at FROM user_subscriptions WHERE user_id = ?`, userID).
		Scan(&sub.PlanID, &sub.Status, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return community.SubscriptionStatus{Status: community.SubscriptionNone}, nil
	}
	if err != nil {
		return community.SubscriptionStatus{}, fmt.Errorf("get subscription: %w", err)
	}
	if expires.Valid {
		sub.ExpiresAt = &expires.Time
		if sub.Status == community.SubscriptionActive && expires.Time.Before(time.Now()) {
			sub.Status = community.SubscriptionExpired
		}
	}
	return sub, nil
}

// ActivateSubscription starts or replaces the user's subscription on the
// given plan; expiry follows the plan duration in months.
func (s *Store) ActivateSubscription(ctx context.Context, userID, planID string) (community.SubscriptionStatus, error) {
	var months int
	err := s.db.QueryRowContext(ctx, `SELECT duration_months FROM subscription_plans WHERE id = ?`, planID).Scan(&months)
	if errors.Is(err, sql.ErrNoRows) {
		return community.SubscriptionStatus{}, fmt.Errorf("plan not found")
	}
	if err != nil {
		return community.SubscriptionStatus{}, fmt.Errorf("get plan: %w", err)
	}

	startsAt := time.Now().UTC()
	expiresAt := startsAt.AddDate(0, months, 0)
	_, err = s.db.ExecContext(ctx, `INSERT INTO user_subscriptions(user_id, plan_id, status, started_at, expires_at)
        VALUES(?, ?, ?, ?, ?)
        ON CONFLICT(user_id) DO UPDATE SET plan_id = excluded.plan_id, status = excluded.status,
        started_at = excluded.started_at, expires_at = excluded.expires_at`,
		userID, planID, community.SubscriptionActive, startsAt, expiresAt)
	if err != nil {
		return community.SubscriptionStatus{}, fmt.Errorf("activate subscription: %w", err)
	}
	return community.SubscriptionStatus{PlanID: planID, Status: community.SubscriptionActive, ExpiresAt: &expiresAt}, nil
}

// CancelSubscription marks the user's subscription cancelled. Cancelling
// without a subscription is a no-op.
func (s *Store) CancelSubscription(ctx context.Context, userID string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE user_subscriptions SET status = ? WHERE user_id = ?`,
		community.SubscriptionCancelled, userID)
	if err != nil {
		return fmt.Errorf("cancel subscription: %w", err)
	}
	return nil
}

// ListHelpContacts returns the professional help directory.
func (s *Store) ListHelpContacts(ctx context.Context) ([]community.ProfessionalContact, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, title, specialization, description, phone, email,
        website, location, rating, review_count, image, availability, languages, type, is_emergency
        FROM help_contacts ORDER BY rating DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list help contacts: %w", err)
	}
	defer rows.Close()

	var contacts []community.ProfessionalContact
	for rows.Next() {
		var c community.ProfessionalContact
		var specialization, languages string
		var emergency int
		if err := rows.Scan(&c.ID, &c.Name, &c.Title, &specialization, &c.Description, &c.Phone, &c.Email,
			&c.Website, &c.Location, &c.Rating, &c.ReviewCount, &c.Image, &c.Availability, &languages,
			&c.Type, &emergency); err != nil {
			return nil, fmt.Errorf("scan help contact: %w", err)
		}
		c.Specialization = splitList(specialization)
		c.Languages = splitList(languages)
		c.IsEmergency = emergency == 1
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// ListEmergencyContacts returns the crisis lines.
func (s *Store) ListEmergencyContacts(ctx context.Context) ([]community.EmergencyContact, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, phone, description, country, available_24h
        FROM emergency_contacts ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list emergency contacts: %w", err)
	}
	defer rows.Close()

	var contacts []community.EmergencyContact
	for rows.Next() {
		var c community.EmergencyContact
		var available int
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Description, &c.Country, &available); err != nil {
			return nil, fmt.Errorf("scan emergency contact: %w", err)
		}
		c.Available24h = available == 1
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func splitList(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
