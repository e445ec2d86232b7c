package game

import (
	"github.com/kevin-chtw/tw_mahjong/mahjong"
	"github.com/kevin-chtw/tw_mahjong/utils"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const SeatAll int32 = -1

// SendFunc 宿主注入的发送通道; 引擎事件以Any信封交给宿主,
// 具体传输协议不在本层
type SendFunc func(seat int32, msg *anypb.Any)

// Sender 把引擎事件打包成structpb负载发给上层
type Sender struct {
	game        *Game
	send        SendFunc
	increasedID int32
	requestIDs  []int32 // 记录每个座位的请求ID
}

func NewSender(game *Game, send SendFunc) *Sender {
	return &Sender{
		game:        game,
		send:        send,
		increasedID: 1,
		requestIDs:  make([]int32, game.GetPlayerCount()),
	}
}

func (s *Sender) GetRequestID(seat int32) int32 {
	s.increasedID++
	if s.game.IsValidSeat(seat) {
		s.requestIDs[seat] = s.increasedID
	} else {
		for i := range s.requestIDs {
			s.requestIDs[i] = s.increasedID
		}
	}
	return s.increasedID
}

func (s *Sender) IsRequestID(seat, id int32) bool {
	if !s.game.IsValidSeat(seat) {
		return false
	}
	return s.requestIDs[seat] == id
}

func (s *Sender) SendEvent(seat int32, event string, fields map[string]any) {
	if s.send == nil {
		return
	}
	fields["event"] = event
	payload, err := structpb.NewStruct(fields)
	if err != nil {
		return
	}
	if msg := utils.ToAny(payload); msg != nil {
		s.send(seat, msg)
	}
}

func (s *Sender) SendGameStartAck() {
	play := s.game.play
	s.SendEvent(SeatAll, "game_start", map[string]any{
		"banker":     float64(play.GetBanker()),
		"tile_count": float64(play.GetDealer().GetRestCount()),
		"property":   play.GetRule().ToString(),
	})
}

func (s *Sender) SendHandTilesAck(seat int32) {
	tiles := s.game.play.GetPlayData(seat).GetHandTiles()
	s.SendEvent(seat, "hand_tiles", map[string]any{
		"tiles": tilesToList(tiles),
	})
}

func (s *Sender) SendDrawAck(seat int32, tile mahjong.Tile) {
	s.SendEvent(seat, "draw", map[string]any{
		"seat": float64(seat),
		"tile": float64(tile),
	})
	// 其他座位只看到摸牌动作
	for i := int32(0); i < s.game.GetPlayerCount(); i++ {
		if i != seat {
			s.SendEvent(i, "draw", map[string]any{
				"seat": float64(seat),
				"tile": float64(mahjong.TileNull),
			})
		}
	}
}

func (s *Sender) SendDiscardAck(seat int32, tile mahjong.Tile) {
	s.SendEvent(SeatAll, "discard", map[string]any{
		"seat": float64(seat),
		"tile": float64(tile),
	})
}

// SendOperateReq 向某座位下发可操作集合
func (s *Sender) SendOperateReq(seat int32, opt *mahjong.Operates) {
	s.SendEvent(seat, "operate_req", map[string]any{
		"seat":       float64(seat),
		"operates":   float64(opt.Value),
		"request_id": float64(s.GetRequestID(seat)),
	})
}

func (s *Sender) SendTipAck(seat int32, tip int) {
	s.SendEvent(seat, "tip", map[string]any{
		"tip": float64(tip),
	})
}

func (s *Sender) SendClaimAck(seat int32, operate int32, tile mahjong.Tile) {
	s.SendEvent(SeatAll, "claim", map[string]any{
		"seat":    float64(seat),
		"operate": float64(operate),
		"tile":    float64(tile),
	})
}

func (s *Sender) SendResultAck(result *mahjong.HandResult) {
	fields := map[string]any{
		"winner": float64(result.Winner),
		"zimo":   result.Zimo,
		"pao":    float64(result.PaoSeat),
		"score":  float64(result.Score),
	}
	if result.HuResult != nil {
		fans := make([]any, 0, len(result.HuResult.FanTypes))
		for _, fan := range result.HuResult.FanTypes {
			fans = append(fans, map[string]any{
				"fan":   float64(fan),
				"name":  mahjong.FanName(fan),
				"value": float64(mahjong.FanValue(fan)),
			})
		}
		fields["fans"] = fans
		fields["total_fan"] = float64(result.HuResult.TotalFan)
	}
	s.SendEvent(SeatAll, "result", fields)
}

func tilesToList(tiles []mahjong.Tile) []any {
	res := make([]any, len(tiles))
	for i, t := range tiles {
		res[i] = float64(t)
	}
	return res
}
