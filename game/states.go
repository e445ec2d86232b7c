package game

import (
	"time"

	"github.com/kevin-chtw/tw_mahjong/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	operateTimeout = 15 * time.Second
	claimTimeout   = 10 * time.Second
	resultDelay    = 2 * time.Second
)

// 消息为structpb.Struct: {request_id, operate, tile}
func parseOperateMsg(req proto.Message) (operate int32, tile mahjong.Tile, ok bool) {
	st, isStruct := req.(*structpb.Struct)
	if !isStruct {
		return 0, mahjong.TileNull, false
	}
	fields := st.GetFields()
	opField, hasOp := fields["operate"]
	if !hasOp {
		return 0, mahjong.TileNull, false
	}
	operate = int32(opField.GetNumberValue())
	tile = mahjong.TileNull
	if tileField, hasTile := fields["tile"]; hasTile {
		tile = mahjong.Tile(tileField.GetNumberValue())
	}
	return operate, tile, true
}

// StateDeal 配牌开局
type StateDeal struct {
	*State
}

func NewStateDeal(g *Game, args ...any) IState {
	return &StateDeal{State: NewState(g)}
}

func (s *StateDeal) OnEnter() {
	play := s.game.play
	play.Initialize(s.game.manual)
	play.Deal()
	s.game.sender.SendGameStartAck()
	for i := int32(0); i < s.game.GetPlayerCount(); i++ {
		s.game.sender.SendHandTilesAck(i)
	}
	s.game.SetNextState(NewStateAction)
}

// StateAction 当前座位的行动回合: 出牌/自摸/自杠
type StateAction struct {
	*State
}

func NewStateAction(g *Game, args ...any) IState {
	return &StateAction{State: NewState(g)}
}

func (s *StateAction) OnEnter() {
	play := s.game.play
	if play.GetPhase() == mahjong.PhaseDraw {
		tile, err := play.Draw(play.GetCurSeat())
		if err != nil {
			logger.Log.Errorf("draw: %v", err)
			return
		}
		if play.GetPhase() == mahjong.PhaseHandOver {
			s.game.SetNextState(NewStateResult)
			return
		}
		s.game.sender.SendDrawAck(play.GetCurSeat(), tile)
	}

	seat := play.GetCurSeat()
	opt := play.FetchSelfOperates()
	for _, tip := range opt.Tips {
		s.game.sender.SendTipAck(seat, tip)
	}
	s.game.sender.SendOperateReq(seat, opt)
	s.AsyncMsgTimer(s.onMsg, operateTimeout, s.onTimeout)
}

func (s *StateAction) onMsg(seat int32, req proto.Message) error {
	play := s.game.play
	if seat != play.GetCurSeat() {
		return mahjong.ErrNotYourTurn
	}
	operate, tile, ok := parseOperateMsg(req)
	if !ok {
		return mahjong.ErrInvalidOperate
	}

	switch operate {
	case mahjong.OperateDiscard:
		if err := play.Discard(seat, tile); err != nil {
			return err
		}
		s.game.sender.SendDiscardAck(seat, play.GetCurTile())
		s.game.SetNextState(NewStateWaitClaim)
	case mahjong.OperateHu:
		if _, err := play.Zimo(seat); err != nil {
			return err
		}
		s.game.sender.SendClaimAck(seat, mahjong.OperateHu, play.GetCurTile())
		s.game.SetNextState(NewStateResult)
	case mahjong.OperateKon:
		konType := mahjong.KonTypeAn
		if play.GetPlayData(seat).HasPon(tile) {
			konType = mahjong.KonTypeBu
		}
		if err := play.TryKon(seat, tile, konType); err != nil {
			return err
		}
		s.game.sender.SendClaimAck(seat, mahjong.OperateKon, tile)
		s.settleKon(seat, konType)
		if play.GetPhase() == mahjong.PhaseWaitClaims {
			// 补杠被开了抢杠窗口
			s.game.SetNextState(NewStateWaitClaim)
		} else if play.GetPhase() == mahjong.PhaseHandOver {
			s.game.SetNextState(NewStateResult)
		} else {
			s.game.SetNextState(NewStateAction)
		}
	default:
		return mahjong.ErrInvalidOperate
	}
	return nil
}

// 超时托管: 能胡则胡, 否则打最后摸的牌
func (s *StateAction) onTimeout() {
	play := s.game.play
	seat := play.GetCurSeat()
	opt := play.FetchSelfOperates()
	if opt.IsMustHu {
		if _, err := play.Zimo(seat); err == nil {
			s.game.SetNextState(NewStateResult)
			return
		}
	}
	if err := play.Discard(seat, mahjong.TileNull); err != nil {
		logger.Log.Errorf("trust discard: %v", err)
		return
	}
	s.game.sender.SendDiscardAck(seat, play.GetCurTile())
	s.game.SetNextState(NewStateWaitClaim)
}

func (s *StateAction) settleKon(seat int32, konType mahjong.KonType) {
	if konType == mahjong.KonTypeAn {
		s.game.scorelator.CalcKon(mahjong.ScoreReasonAnKon, seat, mahjong.SeatNull, 0, 2)
	} else {
		s.game.scorelator.CalcKon(mahjong.ScoreReasonBuKon, seat, mahjong.SeatNull, 0, 1)
	}
}

// StateWaitClaim 抢牌窗口: 收表态, 收齐或超时即裁决
type StateWaitClaim struct {
	*State
}

func NewStateWaitClaim(g *Game, args ...any) IState {
	return &StateWaitClaim{State: NewState(g)}
}

func (s *StateWaitClaim) OnEnter() {
	play := s.game.play
	if play.ClaimsResolved() {
		s.resolve()
		return
	}
	for i := int32(0); i < s.game.GetPlayerCount(); i++ {
		opt := play.GetClaims().Allowed(i)
		if !opt.Empty() && opt.Value != mahjong.OperatePass {
			for _, tip := range opt.Tips {
				s.game.sender.SendTipAck(i, tip)
			}
			s.game.sender.SendOperateReq(i, opt)
		}
	}
	s.AsyncMsgTimer(s.onMsg, claimTimeout, s.resolve)
}

func (s *StateWaitClaim) onMsg(seat int32, req proto.Message) error {
	play := s.game.play
	operate, _, ok := parseOperateMsg(req)
	if !ok {
		return mahjong.ErrInvalidOperate
	}
	var err error
	if operate == mahjong.OperatePass {
		err = play.SubmitPass(seat)
	} else {
		err = play.SubmitClaim(seat, operate)
	}
	if err != nil {
		return err
	}
	if play.ClaimsResolved() {
		s.resolve()
	}
	return nil
}

func (s *StateWaitClaim) resolve() {
	play := s.game.play
	outcome, err := play.ResolveClaims()
	if err != nil {
		logger.Log.Errorf("resolve claims: %v", err)
		return
	}
	if outcome.Seat != mahjong.SeatNull {
		s.game.sender.SendClaimAck(outcome.Seat, outcome.Operate, play.GetCurTile())
	}

	switch {
	case outcome.Operate == mahjong.OperateHu:
		s.game.SetNextState(NewStateResult)
	case outcome.Operate == mahjong.OperateKon && outcome.Seat != mahjong.SeatNull:
		s.game.scorelator.CalcKon(mahjong.ScoreReasonZhiKon, outcome.Seat, play.GetClaims().Discarder(), 1, 0)
		s.game.SetNextState(NewStateAction)
	case play.GetPhase() == mahjong.PhaseHandOver:
		s.game.SetNextState(NewStateResult)
	default:
		// 碰/吃进入该座位出牌, 无人抢则下家摸牌
		s.game.SetNextState(NewStateAction)
	}
}

// StateResult 终局结算
type StateResult struct {
	*State
}

func NewStateResult(g *Game, args ...any) IState {
	return &StateResult{State: NewState(g)}
}

func (s *StateResult) OnEnter() {
	play := s.game.play
	result := play.Result()
	if result == nil {
		logger.Log.Error("result state entered before hand over")
		return
	}

	if result.Winner != mahjong.SeatNull {
		var scores []int64
		if result.Zimo {
			scores = s.game.scorelator.ZimoMulti(result.Winner, result.Score)
		} else {
			scores = s.game.scorelator.PaoMulti(result.Winner, result.PaoSeat, result.Score)
		}
		s.game.scorelator.CalcScores(mahjong.ScoreReasonHu, scores)
	}

	s.game.sender.SendResultAck(result)
	s.AsyncTimer(resultDelay, func() {
		s.game.over = true
	})
}
