package httphandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *ApiHandler, publicDir string) chi.Router {
	r := chi.NewRouter()
	r.Route("/v1", func(rr chi.Router) {
		rr.Use(h.authenticate)

		rr.Post("/backup", h.BackupDispatch)
		rr.Post("/backup/export", h.ExportBackup)

		rr.Post("/thumbnails", h.UploadThumbnail)

		rr.Post("/logs", h.CreateLogEvent)
		rr.Get("/logs", h.DescribeLogsAPI)
		rr.Get("/logs/recent", h.ListRecentLogEvents)

		rr.Post("/videos", h.CreateVideo)
		rr.Get("/videos", h.ListVideos)
		rr.Get("/videos/{id}", h.GetVideo)
		rr.Put("/videos/{id}", h.UpdateVideo)
		rr.Delete("/videos/{id}", h.DeleteVideo)

		rr.Post("/games", h.CreateGame)
		rr.Get("/games", h.ListGames)
		rr.Get("/games/{id}", h.GetGame)
		rr.Put("/games/{id}", h.UpdateGame)
		rr.Delete("/games/{id}", h.DeleteGame)

		rr.Post("/activities", h.CreateActivity)
		rr.Get("/activities", h.ListActivities)
		rr.Get("/activities/{id}", h.GetActivity)
		rr.Put("/activities/{id}", h.UpdateActivity)
		rr.Delete("/activities/{id}", h.DeleteActivity)

		rr.Post("/achievements", h.CreateAchievement)
		rr.Get("/achievements", h.ListAchievements)
		rr.Get("/achievements/{id}", h.GetAchievement)
		rr.Put("/achievements/{id}", h.UpdateAchievement)
		rr.Delete("/achievements/{id}", h.DeleteAchievement)

		rr.Post("/avatars", h.CreateAvatar)
		rr.Get("/avatars", h.ListAvatars)
		rr.Get("/avatars/{id}", h.GetAvatar)
		rr.Put("/avatars/{id}", h.UpdateAvatar)
		rr.Delete("/avatars/{id}", h.DeleteAvatar)

		rr.Post("/missions", h.CreateMission)
		rr.Get("/missions", h.ListMissions)
		rr.Get("/missions/{id}", h.GetMission)
		rr.Put("/missions/{id}", h.UpdateMission)
		rr.Delete("/missions/{id}", h.DeleteMission)

		rr.Post("/users", h.CreateUser)
		rr.Get("/users", h.ListUsers)
		rr.Get("/users/{id}", h.GetUser)
		rr.Put("/users/{id}", h.UpdateUser)
		rr.Delete("/users/{id}", h.DeleteUser)

		rr.Get("/status", h.Status)

		rr.Get("/h", func(writer http.ResponseWriter, request *http.Request) {
			ok(writer, "Zaazu admin API is live!", struct{}{})
		})
	})

	// locally stored thumbnails are served straight from the public dir
	r.Handle("/thumbnails/*", http.FileServer(http.Dir(publicDir)))

	return r
}
