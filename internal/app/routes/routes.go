package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unitycircles/backend/internal/app/controllers"
	"github.com/unitycircles/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	communityController *controllers.CommunityController,
	postController *controllers.PostController,
	messageController *controllers.MessageController,
	meetingController *controllers.MeetingController,
	onboardingController *controllers.OnboardingController,
	mentorController *controllers.MentorController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		users := authenticated.Group("/users")
		{
			users.GET("", userController.ListUsers)
			users.GET("/me", userController.GetMe)
			users.PUT("/me", userController.UpdateMe)
			users.POST("/me/profile-picture", userController.UploadProfilePicture)
		}

		communities := authenticated.Group("/communities")
		{
			communities.GET("", communityController.ListCommunities)
			communities.POST("", communityController.CreateCommunity)
			communities.GET("/:id", communityController.GetCommunity)
			communities.GET("/:id/members", communityController.GetMembers)
			communities.POST("/:id/members", communityController.JoinCommunity)
			communities.DELETE("/:id/members", communityController.LeaveCommunity)
			communities.POST("/:id/image", communityController.UploadImage)
			communities.GET("/:id/posts", postController.ListCommunityPosts)
			communities.POST("/:id/posts", postController.CreatePost)
			communities.GET("/:id/meetings", meetingController.ListCommunityMeetings)
		}

		posts := authenticated.Group("/posts")
		{
			posts.GET("/:id", postController.GetPost)
			posts.POST("/:id/upvote", postController.UpvotePost)
			posts.POST("/:id/downvote", postController.DownvotePost)
			posts.POST("/:id/comments", postController.AddComment)
		}

		comments := authenticated.Group("/comments")
		{
			comments.POST("/:id/upvote", postController.UpvoteComment)
		}

		messages := authenticated.Group("/messages")
		{
			messages.POST("", messageController.SendMessage)
			messages.GET("", messageController.ListMessages)
			messages.GET("/conversations", messageController.ListConversations)
			messages.GET("/with/:userId", messageController.GetThread)
		}

		meetings := authenticated.Group("/meetings")
		{
			meetings.POST("", meetingController.CreateMeeting)
			meetings.GET("", meetingController.ListMeetings)
			meetings.POST("/:id/attendees", meetingController.JoinMeeting)
			meetings.DELETE("/:id/attendees", meetingController.LeaveMeeting)
			meetings.PATCH("/:id/status", meetingController.UpdateStatus)
		}

		onboarding := authenticated.Group("/onboarding")
		{
			onboarding.GET("", onboardingController.GetStatus)
			onboarding.POST("/complete-profile", onboardingController.CompleteProfile())
			onboarding.POST("/complete-interests", onboardingController.CompleteInterests())
			onboarding.POST("/complete-goals", onboardingController.CompleteGoals())
			onboarding.POST("/complete-community", onboardingController.CompleteCommunity())
		}

		mentors := authenticated.Group("/mentors")
		{
			mentors.GET("", mentorController.ListMentors)
			mentors.POST("", mentorController.RegisterMentor)
		}

		authenticated.GET("/dashboard", dashboardController.GetDashboard)
	}
}
