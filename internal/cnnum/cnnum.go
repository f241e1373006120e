// Package cnnum converts between Chinese numerals and Arabic integers.
// It covers the range used by document headings (chapters, sections),
// up to the 亿 scale. Conversion is pure and stateless.
package cnnum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNumeral indicates the input is not a well-formed Chinese numeral.
var ErrInvalidNumeral = errors.New("invalid Chinese numeral")

var digits = map[rune]int64{
	'零': 0, '〇': 0,
	'一': 1, '二': 2, '两': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

var smallUnits = map[rune]int64{
	'十': 10,
	'百': 100,
	'千': 1000,
}

var bigUnits = map[rune]int64{
	'万': 10000,
	'亿': 100000000,
}

// ToArabic parses a Chinese numeral such as 一百二十三 or 十五 into an integer.
// Variant characters 〇 and 两 are accepted.
func ToArabic(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidNumeral)
	}

	var total, section, number int64
	for _, r := range s {
		if d, ok := digits[r]; ok {
			number = d
			continue
		}
		if u, ok := smallUnits[r]; ok {
			if number == 0 {
				number = 1 // leading 十 as in 十五
			}
			section += number * u
			number = 0
			continue
		}
		if u, ok := bigUnits[r]; ok {
			total += (section + number) * u
			section = 0
			number = 0
			continue
		}
		return 0, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidNumeral, r, s)
	}
	return total + section + number, nil
}

var (
	digitNames = []string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
	unitNames  = []string{"", "十", "百", "千"}
	bigNames   = []string{"", "万", "亿"}
)

// ToChinese formats an integer as a standard Chinese numeral: 123 becomes
// 一百二十三, 10 becomes 十, 110 becomes 一百一十.
func ToChinese(n int64) string {
	if n == 0 {
		return "零"
	}
	if n >= 10 && n <= 19 {
		// Bare teens drop the leading 一: 15 is 十五, not 一十五.
		s := "十"
		if d := n % 10; d != 0 {
			s += digitNames[d]
		}
		return s
	}

	result := ""
	for big := 0; n > 0; big++ {
		sec := n % 10000
		n /= 10000
		if sec == 0 {
			if result != "" && !strings.HasPrefix(result, "零") {
				result = "零" + result
			}
			continue
		}
		seg := sectionToChinese(sec) + bigNames[big]
		if sec < 1000 && result != "" && !strings.HasPrefix(result, "零") {
			result = "零" + result
		}
		result = seg + result
	}
	return result
}

// sectionToChinese formats a 0-9999 section, inserting 零 for interior gaps.
func sectionToChinese(sec int64) string {
	s := ""
	needZero := false
	for unit := 0; sec > 0; unit++ {
		d := sec % 10
		sec /= 10
		if d == 0 {
			if s != "" {
				needZero = true
			}
			continue
		}
		seg := digitNames[d] + unitNames[unit]
		if needZero {
			seg += "零"
			needZero = false
		}
		s = seg + s
	}
	return s
}

// Normalize parses a Chinese numeral and re-renders it in standard form,
// so 两 becomes 二 and 〇 becomes 零.
func Normalize(s string) (string, error) {
	n, err := ToArabic(s)
	if err != nil {
		return "", err
	}
	return ToChinese(n), nil
}
