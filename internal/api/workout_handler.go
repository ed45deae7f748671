package api

import (
	"errors"
	"math"
	"net/http"
	"time"

	"workoutlogger/internal/domain"
	"workoutlogger/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- DTOs for API (Data Transfer Objects) ---

// SetResponse is one set in a workout response.
type SetResponse struct {
	SetNumber int     `json:"set_number"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
}

// ExerciseResponse is one exercise in a workout response.
type ExerciseResponse struct {
	Name string        `json:"name"`
	Sets []SetResponse `json:"sets"`
}

// WorkoutResponse is the full aggregate as returned to clients. Title is a
// pointer so an absent title serializes as null, matching the stored shape.
type WorkoutResponse struct {
	ID          string             `json:"id"`
	WorkoutDate string             `json:"workout_date"`
	Title       *string            `json:"title"`
	Exercises   []ExerciseResponse `json:"exercises"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// WorkoutSummaryResponse is one row of the history listing.
type WorkoutSummaryResponse struct {
	ID            string    `json:"id"`
	WorkoutDate   string    `json:"workout_date"`
	Title         string    `json:"title"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ExerciseCount int       `json:"exercise_count"`
	SetCount      int       `json:"set_count"`
}

// MapWorkoutToResponse converts a domain.Workout to WorkoutResponse DTO.
func MapWorkoutToResponse(w *domain.Workout) WorkoutResponse {
	if w == nil {
		return WorkoutResponse{}
	}

	var title *string
	if w.Title != "" {
		t := w.Title
		title = &t
	}

	exercises := make([]ExerciseResponse, len(w.Exercises))
	for i, ex := range w.Exercises {
		sets := make([]SetResponse, len(ex.Sets))
		for j, s := range ex.Sets {
			sets[j] = SetResponse{SetNumber: s.SetNumber, Reps: s.Reps, Weight: s.Weight}
		}
		exercises[i] = ExerciseResponse{Name: ex.Name, Sets: sets}
	}

	return WorkoutResponse{
		ID:          w.ID.Hex(),
		WorkoutDate: w.WorkoutDate,
		Title:       title,
		Exercises:   exercises,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

// MapSummariesToResponse converts history summaries to their DTO form.
func MapSummariesToResponse(summaries []domain.WorkoutSummary) []WorkoutSummaryResponse {
	responses := make([]WorkoutSummaryResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = WorkoutSummaryResponse{
			ID:            s.ID.Hex(),
			WorkoutDate:   s.WorkoutDate,
			Title:         s.Title,
			CreatedAt:     s.CreatedAt,
			UpdatedAt:     s.UpdatedAt,
			ExerciseCount: s.ExerciseCount,
			SetCount:      s.SetCount,
		}
	}
	return responses
}

// --- Handler Methods ---

// ListWorkouts handles GET /api/workouts.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	page, err := h.workoutService.List(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list workouts.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"workouts":  MapSummariesToResponse(page.Workouts),
		"timing_ms": page.TimingMS,
	})
}

// GetWorkout handles GET /api/workouts/:id. Like the listing, the response
// carries how long the lookup took.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortNotFound(c)
		return
	}

	start := time.Now()
	workout, err := h.workoutService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortNotFound(c)
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load workout.")
		}
		return
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"workout":   MapWorkoutToResponse(workout),
		"timing_ms": math.Round(elapsed*100) / 100,
	})
}

// CreateWorkout handles POST /api/workouts.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var input domain.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithValidationErrors(c, []string{"Invalid JSON payload."})
		return
	}

	workout, err := h.workoutService.Create(c.Request.Context(), input)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			abortWithValidationErrors(c, verr.Errors)
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":         true,
		"workout_id": workout.ID.Hex(),
		"workout":    MapWorkoutToResponse(workout),
	})
}

// ReplaceWorkout handles PUT /api/workouts/:id. The payload replaces the
// whole exercise/set tree; there is no partial patching.
func (h *WorkoutHandler) ReplaceWorkout(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortNotFound(c)
		return
	}

	var input domain.WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		abortWithValidationErrors(c, []string{"Invalid JSON payload."})
		return
	}

	workout, err := h.workoutService.Replace(c.Request.Context(), id, input)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			abortWithValidationErrors(c, verr.Errors)
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortNotFound(c)
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "workout": MapWorkoutToResponse(workout)})
}

// DeleteWorkout handles DELETE /api/workouts/:id. Deletion is permanent and
// cascades to the workout's exercises and sets; the UI obtains the user's
// confirmation before calling this.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortNotFound(c)
		return
	}

	if err := h.workoutService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortNotFound(c)
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SeedRequest is the body for the debug seed endpoint.
type SeedRequest struct {
	Count int `json:"count"`
}

// SeedWorkouts handles POST /api/debug/seed.
func (h *WorkoutHandler) SeedWorkouts(c *gin.Context) {
	req := SeedRequest{Count: service.DefaultSeedCount}
	// An empty or malformed body just means "use the default count".
	_ = c.ShouldBindJSON(&req)
	if req.Count == 0 {
		req.Count = service.DefaultSeedCount
	}

	created, err := h.workoutService.Seed(c.Request.Context(), req.Count)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to seed workouts.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "created": created})
}
