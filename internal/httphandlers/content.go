package httphandlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"zaazu/internal/types"
)

func parseID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

func respondEntity(w http.ResponseWriter, message string, entity interface{}, err error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			notFound(w, errors.New("not found"))
			return
		}
		serverError(w, err)
		return
	}
	ok(w, message, entity)
}

func (h *ApiHandler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	video, err := decodeBody[types.Video](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	saved, err := h.content.SaveVideo(r.Context(), video)
	respondEntity(w, "video saved", saved, err)
}

func (h *ApiHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	video, err := decodeBody[types.Video](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	video.ID = id
	saved, err := h.content.SaveVideo(r.Context(), video)
	respondEntity(w, "video updated", saved, err)
}

func (h *ApiHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	video, err := h.content.GetVideo(r.Context(), id)
	respondEntity(w, "video", video, err)
}

func (h *ApiHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.content.ListVideos(r.Context())
	respondEntity(w, "videos", videos, err)
}

func (h *ApiHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	respondEntity(w, "video deleted", nil, h.content.DeleteVideo(r.Context(), id))
}

func (h *ApiHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := decodeBody[types.Game](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	saved, err := h.content.SaveGame(r.Context(), game)
	respondEntity(w, "game saved", saved, err)
}

func (h *ApiHandler) UpdateGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	game, err := decodeBody[types.Game](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	game.ID = id
	saved, err := h.content.SaveGame(r.Context(), game)
	respondEntity(w, "game updated", saved, err)
}

func (h *ApiHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	game, err := h.content.GetGame(r.Context(), id)
	respondEntity(w, "game", game, err)
}

func (h *ApiHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.content.ListGames(r.Context())
	respondEntity(w, "games", games, err)
}

func (h *ApiHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	respondEntity(w, "game deleted", nil, h.content.DeleteGame(r.Context(), id))
}

func (h *ApiHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := decodeBody[types.Activity](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	saved, err := h.content.SaveActivity(r.Context(), activity)
	respondEntity(w, "activity saved", saved, err)
}

func (h *ApiHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	activity, err := decodeBody[types.Activity](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	activity.ID = id
	saved, err := h.content.SaveActivity(r.Context(), activity)
	respondEntity(w, "activity updated", saved, err)
}

func (h *ApiHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	activity, err := h.content.GetActivity(r.Context(), id)
	respondEntity(w, "activity", activity, err)
}

func (h *ApiHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.content.ListActivities(r.Context())
	respondEntity(w, "activities", activities, err)
}

func (h *ApiHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	respondEntity(w, "activity deleted", nil, h.content.DeleteActivity(r.Context(), id))
}

func (h *ApiHandler) CreateAchievement(w http.ResponseWriter, r *http.Request) {
	achievement, err := decodeBody[types.Achievement](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	saved, err := h.content.SaveAchievement(r.Context(), achievement)
	respondEntity(w, "achievement saved", saved, err)
}

func (h *ApiHandler) UpdateAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	achievement, err := decodeBody[types.Achievement](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	achievement.ID = id
	saved, err := h.content.SaveAchievement(r.Context(), achievement)
	respondEntity(w, "achievement updated", saved, err)
}

func (h *ApiHandler) GetAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	achievement, err := h.content.GetAchievement(r.Context(), id)
	respondEntity(w, "achievement", achievement, err)
}

func (h *ApiHandler) ListAchievements(w http.ResponseWriter, r *http.Request) {
	achievements, err := h.content.ListAchievements(r.Context())
	respondEntity(w, "achievements", achievements, err)
}

func (h *ApiHandler) DeleteAchievement(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	respondEntity(w, "achievement deleted", nil, h.content.DeleteAchievement(r.Context(), id))
}

func (h *ApiHandler) CreateAvatar(w http.ResponseWriter, r *http.Request) {
	avatar, err := decodeBody[types.Avatar](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	saved, err := h.content.SaveAvatar(r.Context(), avatar)
	respondEntity(w, "avatar saved", saved, err)
}

func (h *ApiHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	avatar, err := decodeBody[types.Avatar](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	avatar.ID = id
	saved, err := h.content.SaveAvatar(r.Context(), avatar)
	respondEntity(w, "avatar updated", saved, err)
}

func (h *ApiHandler) GetAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	avatar, err := h.content.GetAvatar(r.Context(), id)
	respondEntity(w, "avatar", avatar, err)
}

func (h *ApiHandler) ListAvatars(w http.ResponseWriter, r *http.Request) {
	avatars, err := h.content.ListAvatars(r.Context())
	respondEntity(w, "avatars", avatars, err)
}

func (h *ApiHandler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	respondEntity(w, "avatar deleted", nil, h.content.DeleteAvatar(r.Context(), id))
}

func (h *ApiHandler) CreateMission(w http.ResponseWriter, r *http.Request) {
	mission, err := decodeBody[types.DailyMission](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	saved, err := h.content.SaveMission(r.Context(), mission)
	respondEntity(w, "mission saved", saved, err)
}

func (h *ApiHandler) UpdateMission(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	mission, err := decodeBody[types.DailyMission](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	mission.ID = id
	saved, err := h.content.SaveMission(r.Context(), mission)
	respondEntity(w, "mission updated", saved, err)
}

func (h *ApiHandler) GetMission(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	mission, err := h.content.GetMission(r.Context(), id)
	respondEntity(w, "mission", mission, err)
}

func (h *ApiHandler) ListMissions(w http.ResponseWriter, r *http.Request) {
	missions, err := h.content.ListMissions(r.Context())
	respondEntity(w, "missions", missions, err)
}

func (h *ApiHandler) DeleteMission(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	respondEntity(w, "mission deleted", nil, h.content.DeleteMission(r.Context(), id))
}

func (h *ApiHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	user, err := decodeBody[types.User](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	saved, err := h.content.SaveUser(r.Context(), user)
	respondEntity(w, "user saved", saved, err)
}

func (h *ApiHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	user, err := decodeBody[types.User](r, h.validate)
	if err != nil {
		badRequest(w, err)
		return
	}
	user.ID = id
	saved, err := h.content.SaveUser(r.Context(), user)
	respondEntity(w, "user updated", saved, err)
}

func (h *ApiHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	user, err := h.content.GetUser(r.Context(), id)
	respondEntity(w, "user", user, err)
}

func (h *ApiHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.content.ListUsers(r.Context())
	respondEntity(w, "users", users, err)
}

func (h *ApiHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	respondEntity(w, "user deleted", nil, h.content.DeleteUser(r.Context(), id))
}
