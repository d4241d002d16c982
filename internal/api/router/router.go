package router

import (
	"vidcat-go/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
//
// authRequired 由 main 构造（携带令牌吊销检查），点赞/取消点赞
// 需要调用方身份，其余目录接口公开。
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	videoHandler *handler.VideoHandler,
	likeHandler *handler.LikeHandler,
	searchHandler *handler.SearchHandler,
	authRequired gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	// --- 认证模块 ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authRequired, authHandler.Logout)
	}

	// --- 视频目录模块 ---
	videos := v1.Group("/videos")
	{
		videos.GET("", videoHandler.List)
		videos.POST("", videoHandler.Upsert)

		videos.GET("/search/findByTitle", searchHandler.FindByTitle)
		videos.GET("/search/findByDurationLessThan", searchHandler.FindByDurationLessThan)

		videos.GET("/:id", videoHandler.GetByID)
		videos.POST("/:id/data", videoHandler.UploadData)
		videos.GET("/:id/data", videoHandler.DownloadData)

		videos.GET("/:id/likedby", likeHandler.LikedBy)

		// 需要登录的接口
		videosAuth := videos.Group("", authRequired)
		{
			videosAuth.POST("/:id/like", likeHandler.Like)
			videosAuth.POST("/:id/unlike", likeHandler.Unlike)
		}
	}
}
