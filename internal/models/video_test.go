package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestVideo_ToggleLike(t *testing.T) {
	video := &Video{}
	user := uuid.New()

	liked := video.ToggleLike(user)
	if !liked {
		t.Fatal("Expected first toggle to like the video")
	}
	if !video.LikedBy(user) {
		t.Fatal("Expected user in likes after toggle on")
	}
	if video.DislikedBy(user) {
		t.Fatal("User must not be in dislikes after a like")
	}
}

func TestVideo_ToggleLike_Twice(t *testing.T) {
	video := &Video{}
	user := uuid.New()

	video.ToggleLike(user)
	liked := video.ToggleLike(user)

	if liked {
		t.Fatal("Expected second toggle to remove the like")
	}
	if video.LikedBy(user) || video.DislikedBy(user) {
		t.Fatal("Expected user absent from both sets after like/un-like")
	}
}

func TestVideo_LikeThenDislike(t *testing.T) {
	video := &Video{}
	user := uuid.New()

	video.ToggleLike(user)
	disliked := video.ToggleDislike(user)

	if !disliked {
		t.Fatal("Expected dislike to be set")
	}
	if video.LikedBy(user) {
		t.Fatal("Like must be cleared by a dislike")
	}
	if !video.DislikedBy(user) {
		t.Fatal("Expected user in dislikes")
	}
}

func TestVideo_DislikeThenLike(t *testing.T) {
	video := &Video{}
	user := uuid.New()

	video.ToggleDislike(user)
	video.ToggleLike(user)

	if video.DislikedBy(user) {
		t.Fatal("Dislike must be cleared by a like")
	}
	if !video.LikedBy(user) {
		t.Fatal("Expected user in likes")
	}
}

func TestVideo_ToggleDislike_Twice(t *testing.T) {
	video := &Video{}
	user := uuid.New()

	video.ToggleDislike(user)
	video.ToggleDislike(user)

	if video.LikedBy(user) || video.DislikedBy(user) {
		t.Fatal("Expected user absent from both sets after dislike/un-dislike")
	}
}

func TestVideo_ToggleLike_OtherUsersUntouched(t *testing.T) {
	video := &Video{}
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	video.ToggleLike(alice)
	video.ToggleDislike(bob)
	video.ToggleLike(carol)
	video.ToggleLike(alice) // alice un-likes

	if video.LikedBy(alice) {
		t.Fatal("Expected alice's like removed")
	}
	if !video.DislikedBy(bob) {
		t.Fatal("Bob's dislike must survive alice's toggles")
	}
	if !video.LikedBy(carol) {
		t.Fatal("Carol's like must survive alice's toggles")
	}
}

func TestVideo_SetsStayDisjoint(t *testing.T) {
	video := &Video{}
	user := uuid.New()

	// Exercise a few alternations; the user must never be in both sets.
	actions := []func(uuid.UUID) bool{
		video.ToggleLike,
		video.ToggleDislike,
		video.ToggleDislike,
		video.ToggleLike,
		video.ToggleLike,
		video.ToggleDislike,
	}

	for i, action := range actions {
		action(user)
		if video.LikedBy(user) && video.DislikedBy(user) {
			t.Fatalf("User in both sets after action %d", i)
		}
	}
}
