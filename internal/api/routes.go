package api

import (
	"net/http"

	"workoutlogger/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the API surface. Every route maps 1:1 onto a
// WorkoutService operation; no business logic lives here.
func SetupRoutes(router *gin.Engine, workoutService service.WorkoutService) {
	workoutHandler := NewWorkoutHandler(workoutService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		workoutGroup := apiGroup.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id", workoutHandler.ReplaceWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
		}

		// Bounded fake-data generator for responsiveness demos.
		apiGroup.POST("/debug/seed", workoutHandler.SeedWorkouts)
	}
}
