package sqlite

import (
	"context"
	"testing"
	"time"

	"wellquest/internal/community"
)

func TestAchievementFeed(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	first, err := store.CreateAchievement(ctx, "user1", community.NewAchievement{
		Title: "First week done", Mood: community.MoodCelebration, Visibility: community.VisibilityPublic,
	})
	if err != nil {
		t.Fatalf("CreateAchievement failed: %v", err)
	}
	if first.UserName != anonymousName {
		t.Fatalf("expected fallback author name, got %q", first.UserName)
	}
	if first.LikesCount != 0 || first.CommentsCount != 0 {
		t.Fatalf("new achievement should start with zero counters: %+v", first)
	}

	if _, err := store.CreateAchievement(ctx, "user2", community.NewAchievement{Title: "Second"}); err != nil {
		t.Fatalf("second CreateAchievement failed: %v", err)
	}

	feed, err := store.ListAchievements(ctx)
	if err != nil {
		t.Fatalf("ListAchievements failed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 feed entries, got %d", len(feed))
	}
	if feed[0].Title != "Second" {
		t.Fatalf("feed not newest-first: %+v", feed)
	}
	// Unknown mood/visibility fall back to defaults.
	if feed[0].Mood != community.MoodProgress || feed[0].Visibility != community.VisibilityPublic {
		t.Fatalf("defaults not applied: %+v", feed[0])
	}
}

func TestCreateAchievementRequiresTitle(t *testing.T) {
	store := setupTestStore(t)
	if _, err := store.CreateAchievement(context.Background(), "user1", community.NewAchievement{Title: "  "}); err == nil {
		t.Fatalf("blank title should be rejected")
	}
}

func TestLikeAchievement(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	a, err := store.CreateAchievement(ctx, "user1", community.NewAchievement{Title: "Likeable"})
	if err != nil {
		t.Fatalf("CreateAchievement failed: %v", err)
	}

	if err := store.LikeAchievement(ctx, a.ID); err != nil {
		t.Fatalf("LikeAchievement failed: %v", err)
	}
	feed, err := store.ListAchievements(ctx)
	if err != nil {
		t.Fatalf("ListAchievements failed: %v", err)
	}
	if feed[0].LikesCount != 1 {
		t.Fatalf("likes_count = %d, want 1", feed[0].LikesCount)
	}

	if err := store.LikeAchievement(ctx, "missing"); err == nil {
		t.Fatalf("liking an unknown achievement should fail")
	}
}

func TestCommunityLifecycle(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	group, err := store.CreateCommunity(ctx, "owner1", community.CommunityInput{
		Name: "Morning runners", FocusArea: "fitness",
	})
	if err != nil {
		t.Fatalf("CreateCommunity failed: %v", err)
	}
	if group.MemberCount != 1 || !group.IsMember {
		t.Fatalf("creator should be enrolled as the first member: %+v", group)
	}

	if err := store.JoinCommunity(ctx, "user2", group.ID); err != nil {
		t.Fatalf("JoinCommunity failed: %v", err)
	}
	// Joining twice is a no-op.
	if err := store.JoinCommunity(ctx, "user2", group.ID); err != nil {
		t.Fatalf("repeat join failed: %v", err)
	}

	groups, err := store.ListCommunities(ctx, "user2")
	if err != nil {
		t.Fatalf("ListCommunities failed: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 community, got %d", len(groups))
	}
	if groups[0].MemberCount != 2 || !groups[0].IsMember {
		t.Fatalf("membership view wrong for user2: %+v", groups[0])
	}

	if err := store.LeaveCommunity(ctx, "user2", group.ID); err != nil {
		t.Fatalf("LeaveCommunity failed: %v", err)
	}
	groups, err = store.ListCommunities(ctx, "user2")
	if err != nil {
		t.Fatalf("ListCommunities after leave failed: %v", err)
	}
	if groups[0].MemberCount != 1 || groups[0].IsMember {
		t.Fatalf("membership view wrong after leave: %+v", groups[0])
	}
}

func TestJoinUnknownCommunity(t *testing.T) {
	store := setupTestStore(t)
	if err := store.JoinCommunity(context.Background(), "user1", "missing"); err == nil {
		t.Fatalf("joining an unknown community should fail")
	}
}

func seedPlan(t *testing.T, store *Store, id string, months int, price float64) {
	t.Helper()
	_, err := store.db.Exec(`INSERT INTO subscription_plans(id, name, duration_months, price, features, popular)
        VALUES(?, ?, ?, ?, ?, ?)`, id, "Plan "+id, months, price, "all courses, priority support", 0)
	if err != nil {
		t.Fatalf("seeding plan failed: %v", err)
	}
}

func TestSubscriptionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	seedPlan(t, store, "monthly", 1, 9.99)
	seedPlan(t, store, "yearly", 12, 79.99)

	sub, err := store.GetSubscription(ctx, "user1")
	if err != nil {
		t.Fatalf("GetSubscription failed: %v", err)
	}
	if sub.Status != community.SubscriptionNone {
		t.Fatalf("fresh user status = %q, want none", sub.Status)
	}

	activated, err := store.ActivateSubscription(ctx, "user1", "yearly")
	if err != nil {
		t.Fatalf("ActivateSubscription failed: %v", err)
	}
	if activated.Status != community.SubscriptionActive || activated.PlanID != "yearly" {
		t.Fatalf("activation wrong: %+v", activated)
	}
	if activated.ExpiresAt == nil || activated.ExpiresAt.Before(time.Now().AddDate(0, 11, 0)) {
		t.Fatalf("yearly plan should expire about 12 months out: %+v", activated.ExpiresAt)
	}

	if err := store.CancelSubscription(ctx, "user1"); err != nil {
		t.Fatalf("CancelSubscription failed: %v", err)
	}
	sub, err = store.GetSubscription(ctx, "user1")
	if err != nil {
		t.Fatalf("GetSubscription after cancel failed: %v", err)
	}
	if sub.Status != community.SubscriptionCancelled {
		t.Fatalf("status after cancel = %q, want cancelled", sub.Status)
	}
}

func TestActivateUnknownPlan(t *testing.T) {
	store := setupTestStore(t)
	if _, err := store.ActivateSubscription(context.Background(), "user1", "missing"); err == nil {
		t.Fatalf("activating an unknown plan should fail")
	}
}

func TestCourseOverview(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	seedPlan(t, store, "monthly", 1, 9.99)

	_, err := store.db.Exec(`INSERT INTO courses(id, title, description, category, level, duration_minutes, modules_count, is_premium, price)
        VALUES('mindfulness-101', 'Mindfulness 101', 'Intro course', 'Health', 'beginner', 120, 6, 1, 19.99)`)
	if err != nil {
		t.Fatalf("seeding course failed: %v", err)
	}

	overview, err := store.CourseOverview(ctx, "user1")
	if err != nil {
		t.Fatalf("CourseOverview failed: %v", err)
	}
	if len(overview.Courses) != 1 || !overview.Courses[0].IsPremium {
		t.Fatalf("courses wrong: %+v", overview.Courses)
	}
	if len(overview.Plans) != 1 {
		t.Fatalf("plans wrong: %+v", overview.Plans)
	}
	if got := overview.Plans[0].Features; len(got) != 2 || got[0] != "all courses" {
		t.Fatalf("features not split: %+v", got)
	}
	if overview.Subscription.Status != community.SubscriptionNone {
		t.Fatalf("subscription wrong: %+v", overview.Subscription)
	}
}

func TestHelpDirectory(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)

	_, err := store.db.Exec(`INSERT INTO help_contacts(id, name, title, specialization, description, location, rating, review_count, availability, languages, type, is_emergency)
        VALUES('c1', 'Dr. Rivera', 'Clinical psychologist', 'anxiety, burnout', 'Short description', 'Madrid', 4.8, 120, 'available', 'es, en', 'psychologist', 0)`)
	if err != nil {
		t.Fatalf("seeding contact failed: %v", err)
	}
	_, err = store.db.Exec(`INSERT INTO emergency_contacts(id, name, phone, description, country, available_24h)
        VALUES('e1', 'Crisis line', '112', 'National line', 'ES', 1)`)
	if err != nil {
		t.Fatalf("seeding emergency contact failed: %v", err)
	}

	contacts, err := store.ListHelpContacts(ctx)
	if err != nil {
		t.Fatalf("ListHelpContacts failed: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}
	if got := contacts[0].Specialization; len(got) != 2 || got[1] != "burnout" {
		t.Fatalf("specialization not split: %+v", got)
	}
	if got := contacts[0].Languages; len(got) != 2 || got[0] != "es" {
		t.Fatalf("languages not split: %+v", got)
	}

	emergency, err := store.ListEmergencyContacts(ctx)
	if err != nil {
		t.Fatalf("ListEmergencyContacts failed: %v", err)
	}
	if len(emergency) != 1 || !emergency[0].Available24h {
		t.Fatalf("emergency contacts wrong: %+v", emergency)
	}
}
