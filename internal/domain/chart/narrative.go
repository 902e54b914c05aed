package chart

import (
	"fmt"

	"github.com/okian/mingpan/internal/domain/sexagenary"
)

// Trait sentences keyed by day stem, one per heavenly stem.
var stemTraits = map[sexagenary.Stem]string{
	"甲": "甲木为栋梁之木，为人正直挺拔，有担当，处事稳重踏实。",
	"乙": "乙木为花草之木，性情温和细腻，适应力强，善于协调周旋。",
	"丙": "丙火为太阳之火，热情开朗，积极主动，富有感染力。",
	"丁": "丁火为灯烛之火，思维细密，外柔内热，洞察力过人。",
	"戊": "戊土为城墙之土，厚重守信，包容力强，是可以托付之人。",
	"己": "己土为田园之土，温厚内敛，心思缜密，善于积蓄经营。",
	"庚": "庚金为刀剑之金，果断刚毅，重情重义，执行力极强。",
	"辛": "辛金为珠玉之金，精致敏锐，追求完美，对品质要求极高。",
	"壬": "壬水为江河之水，聪明豁达，志向远大，善于随机应变。",
	"癸": "癸水为雨露之水，温柔内秀，直觉敏锐，想象力丰富。",
}

// Narrative produces the ordered personality lines for a chart: the trait
// sentence of the day stem followed by a balance line naming the strongest
// and weakest elements. An unknown day stem yields no trait sentence (a
// no-op, not an error). Max and min ties resolve in the fixed 金木水火土
// order.
func Narrative(dayStem sexagenary.Stem, tally Tally) []string {
	lines := make([]string, 0, 2)
	if trait, ok := stemTraits[dayStem]; ok {
		lines = append(lines, trait)
	}
	strongest, weakest := dominantAndWeakest(tally)
	lines = append(lines, fmt.Sprintf("五行之中%s最旺，%s偏弱，宜在起居与行事中调和补益。", strongest, weakest))
	return lines
}

// dominantAndWeakest scans the tally in the fixed element order and returns
// the first maximum and first minimum.
func dominantAndWeakest(t Tally) (strongest, weakest sexagenary.Element) {
	strongest = sexagenary.ElementOrder[0]
	weakest = sexagenary.ElementOrder[0]
	for _, e := range sexagenary.ElementOrder[1:] {
		if t[e] > t[strongest] {
			strongest = e
		}
		if t[e] < t[weakest] {
			weakest = e
		}
	}
	return strongest, weakest
}
