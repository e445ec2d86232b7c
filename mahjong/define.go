package mahjong

const (
	SeatNull int32 = -1
)

const (
	NP4 = 4
	NP3 = 3
	NP2 = 2
)

const (
	TileCountInitBanker = 14
	TileCountInitNormal = 13
	DeadWallCount       = 14
)

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorBamboo                      // 条
	ColorDot                         // 筒
	ColorWind                        // 风牌
	ColorDragon                      // 箭牌
	ColorFlower                      // 花牌
	ColorSeason                      // 季牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3, 4, 4}
var SameTileCountByColor = [ColorEnd]int{4, 4, 4, 4, 4, 1, 1}

// Phase 牌局阶段
type Phase int

const (
	PhaseDraw       Phase = iota // 等待当前座位摸牌
	PhaseDiscard                 // 当前座位14张, 须出牌或自摸
	PhaseWaitClaims              // 刚出牌, 其他座位可抢
	PhaseHandOver                // 一局结束
)

func (p Phase) String() string {
	switch p {
	case PhaseDraw:
		return "Draw"
	case PhaseDiscard:
		return "Discard"
	case PhaseWaitClaims:
		return "WaitClaims"
	case PhaseHandOver:
		return "HandOver"
	default:
		return "Unknown"
	}
}

type ScoreReason int //算分原因

const (
	ScoreReasonHu     ScoreReason = iota // 胡 0
	ScoreReasonAnKon                     // 暗杠 1
	ScoreReasonBuKon                     // 补杠 2
	ScoreReasonZhiKon                    // 直杠 3
)

type ScoreType int //算分方式

const (
	ScoreTypeNatural  ScoreType = iota // 自然分
	ScoreTypeMinScore                  // 积分最小化
	ScoreTypePositive                  // 超出玩家带入的输分由系统支出
	ScoreTypeJustWin                   // 只赢不输
)

const (
	TipsPassHu   = iota // 过胡 0
	TipsPassPon         // 过碰 1
	TipsQiHuFan         // 起胡番 2
	TipsOnlyZiMo        // 只自摸 3
)

type KonType int

const (
	KonTypeNone KonType = -1 + iota
	KonTypeZhi
	KonTypeAn
	KonTypeBu
)

type EGroupType int

const (
	GroupTypeNone EGroupType = iota
	GroupTypeChow
	GroupTypePon
	GroupTypeZhiKon
	GroupTypeAnKon
	GroupTypeBuKon
)

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}

// SeatDistance 顺时针座位距离, 用于抢牌裁决的就近原则
func SeatDistance(from, to, seatCount int32) int32 {
	return (to - from + seatCount) % seatCount
}

type Action struct {
	Seat    int32
	From    int32
	Operate int32
	Tile    Tile
	Extra   Tile
}
