package score

import (
	"fmt"

	"github.com/spf13/viper"
)

// Tier 满贯以上的档位
type Tier struct {
	Label string `mapstructure:"label"`
	Value int    `mapstructure:"value"`
}

// Rule 档位取值，阈值固定：5 番满贯，6-7 跳满，8-10 倍满，11-12 三倍满，13 番以上累计役满
type Rule struct {
	Mangan        Tier   `mapstructure:"mangan"`
	Haneman       Tier   `mapstructure:"haneman"`
	Baiman        Tier   `mapstructure:"baiman"`
	Sanbaiman     Tier   `mapstructure:"sanbaiman"`
	Kazoe         Tier   `mapstructure:"kazoe"`
	Yakuman       Tier   `mapstructure:"yakuman"` // Value 为每倍的点数
	DoubleYakuman string `mapstructure:"double_yakuman"`
	MultiYakuman  string `mapstructure:"multi_yakuman"` // 含一个 %d
	DoraLabel     string `mapstructure:"dora_label"`    // 含一个 %d
}

func setDefaults(vp *viper.Viper) {
	vp.SetDefault("mangan.label", "Mangan")
	vp.SetDefault("mangan.value", 2000)
	vp.SetDefault("haneman.label", "Haneman")
	vp.SetDefault("haneman.value", 3000)
	vp.SetDefault("baiman.label", "Baiman")
	vp.SetDefault("baiman.value", 4000)
	vp.SetDefault("sanbaiman.label", "Sanbaiman")
	vp.SetDefault("sanbaiman.value", 6000)
	vp.SetDefault("kazoe.label", "Kazoe Yakuman")
	vp.SetDefault("kazoe.value", 8000)
	vp.SetDefault("yakuman.label", "Yakuman")
	vp.SetDefault("yakuman.value", 8000)
	vp.SetDefault("double_yakuman", "Double Yakuman")
	vp.SetDefault("multi_yakuman", "%dx Yakuman")
	vp.SetDefault("dora_label", "Dora %d")
}

// DefaultRule 未配置时的档位
func DefaultRule() *Rule {
	rule, _ := LoadRule("")
	return rule
}

// LoadRule 读取 yaml 档位配置，file 为空时只用默认值
func LoadRule(file string) (*Rule, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	setDefaults(vp)
	if file != "" {
		vp.SetConfigFile(file)
		if err := vp.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read rule %s: %w", file, err)
		}
	}

	rule := &Rule{}
	if err := vp.Unmarshal(rule); err != nil {
		return nil, fmt.Errorf("unmarshal rule: %w", err)
	}
	return rule, nil
}

func (r *Rule) yakumanLabel(units int) string {
	switch units {
	case 1:
		return r.Yakuman.Label
	case 2:
		return r.DoubleYakuman
	default:
		return fmt.Sprintf(r.MultiYakuman, units)
	}
}

// tier 按番数取档位，5 番以下没有固定档位
func (r *Rule) tier(han int) (Tier, bool) {
	switch {
	case han >= 13:
		return r.Kazoe, true
	case han >= 11:
		return r.Sanbaiman, true
	case han >= 8:
		return r.Baiman, true
	case han >= 6:
		return r.Haneman, true
	case han == 5:
		return r.Mangan, true
	default:
		return Tier{}, false
	}
}
