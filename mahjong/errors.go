package mahjong

import "errors"

// 非法操作在任何状态改动前检出, 牌局数据不会半更新
var (
	ErrNotYourTurn    = errors.New("mahjong: not this seat's turn")
	ErrWrongPhase     = errors.New("mahjong: operate not allowed in current phase")
	ErrTileNotHeld    = errors.New("mahjong: tile not in hand")
	ErrInvalidOperate = errors.New("mahjong: operate not in legal set")
	ErrInvalidSeat    = errors.New("mahjong: invalid seat")
	ErrHandOver       = errors.New("mahjong: hand is over")
	ErrNotWinningHand = errors.New("mahjong: hand is not winning")
	ErrClaimClosed    = errors.New("mahjong: claim window closed")
	ErrSeatResponded  = errors.New("mahjong: seat already responded")
)
