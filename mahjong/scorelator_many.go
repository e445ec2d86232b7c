package mahjong

// ScoreNode 一次结算原因对应的分数变动
type ScoreNode struct {
	ScoreReason ScoreReason
	Scores      []int64
}

// ScorelatorMany 按结算原因逐笔累积的计分器:
// 胡/杠各记一笔, 供账单式展示
type ScorelatorMany struct {
	scorelator
	scores []*ScoreNode
}

func NewScorelatorMany(host ScoreHost, scoreType ScoreType) *ScorelatorMany {
	return &ScorelatorMany{
		scorelator: *NewScorelator(host, scoreType),
		scores:     make([]*ScoreNode, 0),
	}
}

// CalcMulti 按倍数结算, 倍数乘底分成输赢分
func (s *ScorelatorMany) CalcMulti(sr ScoreReason, multi []int64) []int64 {
	base := s.host.GetScoreBase()
	takeScores := make([]int64, 0)
	winScores := make([]int64, 0)
	for i := int32(0); i < s.host.GetPlayerCount(); i++ {
		takescore := s.host.GetCurScore(i)
		if multi[i] > 0 {
			takescore += s.host.GetTax(i)
		}
		takeScores = append(takeScores, takescore)
		winScores = append(winScores, multi[i]*base)
	}
	return s.calc(sr, takeScores, winScores)
}

func (s *ScorelatorMany) CalcScores(sr ScoreReason, scores []int64) []int64 {
	takeScores := make([]int64, 0)
	for i := int32(0); i < s.host.GetPlayerCount(); i++ {
		takescore := s.host.GetCurScore(i)
		if scores[i] > 0 {
			takescore += s.host.GetTax(i)
		}
		takeScores = append(takeScores, takescore)
	}
	return s.calc(sr, takeScores, scores)
}

// CalcKon 杠的结算: 被杠方付lossMulti, 其余在场各付otherMulti
func (s *ScorelatorMany) CalcKon(sr ScoreReason, win, loss int32, lossMulti, otherMulti int64) []int64 {
	multi := make([]int64, s.host.GetPlayerCount())
	for i := int32(0); i < s.host.GetPlayerCount(); i++ {
		if i == win {
			continue
		}
		if i == loss {
			multi[i] = -lossMulti
			multi[win] += lossMulti
			continue
		}
		if !s.host.IsOut(i) {
			multi[i] = -otherMulti
			multi[win] += otherMulti
		}
	}
	return s.CalcMulti(sr, multi)
}

// ZimoMulti 自摸通杀的输赢分布: 各在场座位付同一份额
func (s *ScorelatorMany) ZimoMulti(winner int32, multiple int64) []int64 {
	multi := make([]int64, s.host.GetPlayerCount())
	for i := int32(0); i < s.host.GetPlayerCount(); i++ {
		if i == winner || s.host.IsOut(i) {
			continue
		}
		multi[i] = -multiple
		multi[winner] += multiple
	}
	return multi
}

// PaoMulti 点炮的输赢分布: 仅放炮方付
func (s *ScorelatorMany) PaoMulti(winner, pao int32, multiple int64) []int64 {
	multi := make([]int64, s.host.GetPlayerCount())
	multi[pao] = -multiple
	multi[winner] = multiple
	return multi
}

func (s *ScorelatorMany) GetScoreNodes() []*ScoreNode {
	return s.scores
}

func (s *ScorelatorMany) addScores(sr ScoreReason, scores []int64) {
	s.scores = append(s.scores, &ScoreNode{
		ScoreReason: sr,
		Scores:      scores,
	})
}

func (s *ScorelatorMany) calc(sr ScoreReason, takeScores, winScores []int64) []int64 {
	final := s.calculate(takeScores, winScores)
	for i, score := range final {
		s.host.AddScoreChange(int32(i), score)
	}
	s.addScores(sr, final)
	return final
}
