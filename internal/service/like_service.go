package service

import (
	"errors"

	"vidcat-go/internal/api/dto"
	"vidcat-go/internal/ledger"
)

var (
	ErrAlreadyLiked = errors.New("您已经点赞过该视频了")
	ErrNotLiked     = errors.New("您尚未点赞该视频")
)

type LikeService struct {
	likes *ledger.Ledger
}

func NewLikeService(likes *ledger.Ledger) *LikeService {
	return &LikeService{likes: likes}
}

// Like 点赞视频，返回最新点赞数
func (s *LikeService) Like(videoID int64, username string) (*dto.LikeStatusData, error) {
	if err := s.likes.Like(videoID, username); err != nil {
		return nil, mapLedgerError(err)
	}
	return s.status(videoID), nil
}

// Unlike 取消点赞，返回最新点赞数
func (s *LikeService) Unlike(videoID int64, username string) (*dto.LikeStatusData, error) {
	if err := s.likes.Unlike(videoID, username); err != nil {
		return nil, mapLedgerError(err)
	}
	return s.status(videoID), nil
}

// UsersWhoLiked 获取点赞该视频的用户名列表
func (s *LikeService) UsersWhoLiked(videoID int64) (*dto.LikedByData, error) {
	users, err := s.likes.UsersWhoLiked(videoID)
	if err != nil {
		return nil, mapLedgerError(err)
	}
	return &dto.LikedByData{
		VideoID: videoID,
		Users:   users,
		Total:   int64(len(users)),
	}, nil
}

func (s *LikeService) status(videoID int64) *dto.LikeStatusData {
	return &dto.LikeStatusData{
		VideoID:   videoID,
		LikeCount: s.likes.Count(videoID),
	}
}

func mapLedgerError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrVideoNotFound):
		return ErrVideoNotFound
	case errors.Is(err, ledger.ErrAlreadyLiked):
		return ErrAlreadyLiked
	case errors.Is(err, ledger.ErrNotLiked):
		return ErrNotLiked
	default:
		return err
	}
}
