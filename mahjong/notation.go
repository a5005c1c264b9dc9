package mahjong

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	ErrInvalidNotation = errors.New("invalid tile notation")
	ErrNoWinningTile   = errors.New("no hu tile")
)

// 手牌最后一组必须是单张，如 ...7z7z
var winTilePattern = regexp.MustCompile(`^(?:[1-9]+[mpsz])*([1-9][mpsz])$`)

// Hand 解析后的手牌：第一段为暗手，其余为副露
type Hand struct {
	Tiles []Tile
	Calls [][]Tile
}

// ParseTiles 解析 "123m456p77z" 这类写法，结果升序
func ParseTiles(s string) ([]Tile, error) {
	var res []Tile
	var digits []int
	for i, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
			continue
		}
		color := EColor(strings.IndexRune(colorMarkers, r))
		if color < ColorBegin {
			return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrInvalidNotation, r, i, s)
		}
		if len(digits) == 0 {
			return nil, fmt.Errorf("%w: marker %q without digits in %q", ErrInvalidNotation, r, s)
		}
		for _, d := range digits {
			t := MakeTile(color, d-1)
			if t == TileNull {
				return nil, fmt.Errorf("%w: %d%c out of range", ErrInvalidNotation, d, r)
			}
			res = append(res, t)
		}
		digits = digits[:0]
	}
	if len(digits) > 0 {
		return nil, fmt.Errorf("%w: unterminated digits in %q", ErrInvalidNotation, s)
	}
	slices.Sort(res)
	return res, nil
}

// FormatTiles 按 m p s z 顺序输出规范写法
func FormatTiles(tiles []Tile) string {
	sorted := slices.Clone(tiles)
	slices.Sort(sorted)
	var sb strings.Builder
	color := ColorUndefined
	for _, t := range sorted {
		c, p := t.Info()
		if c == ColorUndefined {
			continue
		}
		if color != ColorUndefined && c != color {
			sb.WriteByte(colorMarkers[color])
		}
		color = c
		sb.WriteByte(byte('1' + p))
	}
	if color != ColorUndefined {
		sb.WriteByte(colorMarkers[color])
	}
	return sb.String()
}

// splitHand 按单个空格拆分，第一段总是暗手，可以为空
func splitHand(s string) (string, []string) {
	fields := strings.Split(s, " ")
	return fields[0], fields[1:]
}

// ParseHand 按空格拆分暗手与副露，副露之间多余的空格忽略
func ParseHand(s string) (*Hand, error) {
	concealed, calls := splitHand(s)
	tiles, err := ParseTiles(concealed)
	if err != nil {
		return nil, err
	}
	hand := &Hand{Tiles: tiles}
	for _, f := range calls {
		if f == "" {
			continue
		}
		tiles, err := ParseTiles(f)
		if err != nil {
			return nil, err
		}
		hand.Calls = append(hand.Calls, tiles)
	}
	return hand, nil
}

// WinningTile 暗手写法中最后一张单独书写的牌即为和了牌
func WinningTile(s string) (Tile, error) {
	concealed, _ := splitHand(s)
	m := winTilePattern.FindStringSubmatch(concealed)
	if m == nil {
		return TileNull, fmt.Errorf("%w: %q", ErrNoWinningTile, concealed)
	}
	tiles, err := ParseTiles(m[1])
	if err != nil {
		return TileNull, err
	}
	return tiles[0], nil
}
