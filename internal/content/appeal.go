package content

import (
	"fmt"
	"strings"
)

// AppealOther is assigned when an idea matches no keyword table.
const AppealOther = "その他"

// appealTable is one rhetorical-appeal category and its keywords. Declaration
// order matters: ties are broken in favor of the earlier category.
type appealTable struct {
	Category string
	Keywords []string
}

var appealTables = []appealTable{
	{"恐怖訴求", []string{"NG", "失敗", "末路", "危険", "損", "後悔", "やばい", "最悪", "罠", "注意"}},
	{"メリット訴求", []string{"成功", "効果", "メリット", "得", "おすすめ", "最適", "ベスト", "簡単", "楽"}},
	{"権威訴求", []string{"プロ", "専門家", "実績", "証明", "データ", "研究", "〇〇式", "秘訣", "裏側"}},
	{"共感訴求", []string{"あるある", "悩み", "気持ち", "わかる", "辛い", "大変", "苦労", "不安"}},
	{"好奇心訴求", []string{"知ってる？", "実は", "意外", "驚き", "秘密", "真実", "裏話", "本当は"}},
	{"緊急性訴求", []string{"今すぐ", "すぐに", "早く", "急いで", "期間限定", "タイムリミット"}},
}

// CategoryCount is one category's share of a batch, in first-appearance
// order.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Distribution is the appeal-type breakdown of one idea batch.
type Distribution struct {
	Total      int             `json:"totalCount"`
	Counts     []CategoryCount `json:"appealDistribution"`
	IsBalanced bool            `json:"isBalanced"`
	Warnings   []string        `json:"warnings"`
}

// ClassifyBatch assigns each idea the appeal category with the most keyword
// hits in its title and summary, tagging the ideas in place, and judges
// whether the batch is balanced enough for publication. A batch is
// unbalanced when one category exceeds half the ideas or when two or fewer
// categories appear.
func ClassifyBatch(ideas []Idea) Distribution {
	if len(ideas) == 0 {
		return Distribution{
			Warnings: []string{"企画が生成されていません"},
		}
	}

	var counts []CategoryCount
	index := make(map[string]int)
	for i := range ideas {
		category := classifyIdea(ideas[i])
		ideas[i].AppealType = category
		if pos, ok := index[category]; ok {
			counts[pos].Count++
		} else {
			index[category] = len(counts)
			counts = append(counts, CategoryCount{Category: category, Count: 1})
		}
	}

	dist := Distribution{
		Total:      len(ideas),
		Counts:     counts,
		IsBalanced: true,
	}
	for _, c := range counts {
		percentage := float64(c.Count) / float64(dist.Total) * 100
		if percentage > 50 {
			dist.Warnings = append(dist.Warnings,
				fmt.Sprintf("「%s」が%.0f%%を占めています（バランスが偏っています）", c.Category, percentage))
			dist.IsBalanced = false
		}
	}
	if len(counts) <= 2 {
		dist.Warnings = append(dist.Warnings,
			fmt.Sprintf("訴求タイプのバリエーションが少ないです（%d種類のみ）", len(counts)))
		dist.IsBalanced = false
	}
	return dist
}

func classifyIdea(idea Idea) string {
	combined := idea.Title + " " + idea.Summary
	best := AppealOther
	bestCount := 0
	for _, table := range appealTables {
		count := 0
		for _, keyword := range table.Keywords {
			if strings.Contains(combined, keyword) {
				count++
			}
		}
		if count > bestCount {
			best = table.Category
			bestCount = count
		}
	}
	return best
}

// ShouldRegenerate reports whether the batch is skewed enough that the
// operator should be offered a fresh generation round.
func ShouldRegenerate(dist Distribution) bool {
	if !dist.IsBalanced {
		return true
	}
	return len(dist.Counts) < 3
}
