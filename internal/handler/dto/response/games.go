package response

import (
	"pickup-rsvp/internal/usecase/queries"
)

type GameListResponse struct {
	Games []*queries.GameView `json:"games"`
}

func FromGameViews(views []*queries.GameView) *GameListResponse {
	if views == nil {
		views = []*queries.GameView{}
	}
	return &GameListResponse{Games: views}
}

type UpdateGameResponse struct {
	Game             *queries.GameView `json:"game"`
	WaitlistPromoted int               `json:"waitlist_promoted"`
}
