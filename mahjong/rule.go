package mahjong

import (
	"strconv"
	"strings"
)

// 规则项下标, 对应开房属性串的逗号分隔位
const (
	RuleIndexPlayerCount = iota // 人数
	RuleIndexWithChow           // 可吃
	RuleIndexWithFlower         // 带花
	RuleIndexMinFan             // 起胡番
	RuleIndexMaxFan             // 封顶番
	RuleIndexScoreBase          // 底分
	RuleIndexHuPass             // 过胡
	RuleIndexPonPass            // 过碰
	RuleIndexOnlyZimo           // 只自摸
	RuleIndexMustHu             // 能胡必胡
	RuleIndexCount
)

var defaultRules = []int{4, 1, 0, 0, 8, 1, 1, 1, 0, 0}

// Rule 一桌的玩法配置, 从属性串解析, 缺省位取默认值
type Rule struct {
	values []int
}

func NewRule() *Rule {
	r := &Rule{values: make([]int, RuleIndexCount)}
	copy(r.values, defaultRules)
	return r
}

// LoadRule 解析逗号分隔的属性串, 解析失败或缺省的位保持默认
func (r *Rule) LoadRule(property string, defaults []int) {
	if len(defaults) > 0 {
		copy(r.values, defaults)
	}
	if property == "" {
		return
	}
	for i, part := range strings.Split(property, ",") {
		if i >= len(r.values) {
			break
		}
		if v, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			r.values[i] = v
		}
	}
}

func (r *Rule) GetValue(index int) int {
	if index < 0 || index >= len(r.values) {
		return 0
	}
	return r.values[index]
}

func (r *Rule) ToString() string {
	parts := make([]string, len(r.values))
	for i, v := range r.values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func (r *Rule) PlayerCount() int32 {
	count := r.GetValue(RuleIndexPlayerCount)
	if count < NP2 || count > NP4 {
		return NP4
	}
	return int32(count)
}

func (r *Rule) WithChow() bool {
	return r.GetValue(RuleIndexWithChow) != 0
}

func (r *Rule) WithFlower() bool {
	return r.GetValue(RuleIndexWithFlower) != 0
}

// GetAllTiles 整副牌: 万条筒风箭各4张, 带花时加花季各1张
func (r *Rule) GetAllTiles() map[Tile]int {
	tiles := make(map[Tile]int)
	endColor := ColorFlower
	if r.WithFlower() {
		endColor = ColorEnd
	}
	for color := ColorBegin; color < endColor; color++ {
		for point := range PointCountByColor[color] {
			tiles[MakeTile(color, point)] = SameTileCountByColor[color]
		}
	}
	return tiles
}

// PlayConf 由Rule导出的打牌期配置
type PlayConf struct {
	MustHu      bool  // 能胡必胡
	OnlyZimo    bool  // 只可自摸
	HuPass      bool  // 过胡限制
	PonPass     bool  // 过碰限制
	MinFanLimit int32 // 起胡番
	MaxFan      int32 // 封顶番
	ScoreBase   int64 // 底分
}

func NewPlayConf(rule *Rule) *PlayConf {
	return &PlayConf{
		MustHu:      rule.GetValue(RuleIndexMustHu) != 0,
		OnlyZimo:    rule.GetValue(RuleIndexOnlyZimo) != 0,
		HuPass:      rule.GetValue(RuleIndexHuPass) != 0,
		PonPass:     rule.GetValue(RuleIndexPonPass) != 0,
		MinFanLimit: int32(rule.GetValue(RuleIndexMinFan)),
		MaxFan:      int32(rule.GetValue(RuleIndexMaxFan)),
		ScoreBase:   int64(rule.GetValue(RuleIndexScoreBase)),
	}
}

func (c *PlayConf) IsTopFan(fan int32) bool {
	return c.MaxFan > 0 && fan >= c.MaxFan
}

// GetRealFan 封顶
func (c *PlayConf) GetRealFan(fan int32) int32 {
	if c.IsTopFan(fan) {
		return c.MaxFan
	}
	return fan
}

// ScoreForFan 番数到分值: 底分左移番数, 单调不减, 封顶截断
func (c *PlayConf) ScoreForFan(fan int32) int64 {
	return c.ScoreBase << uint(c.GetRealFan(fan))
}
