// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

// iconRule maps name fragments to a glyph. Rules are checked in order and
// the first rule with a matching fragment wins, so specific terms go first.
type iconRule struct {
	keywords []string
	icon     string
}

var iconRules = []iconRule{
	{keywords: []string{"laptop", "computer", "macbook", "pc", "notebook"}, icon: "💻"},
	{keywords: []string{"phone", "mobile", "smartphone", "sim"}, icon: "📱"},
	{keywords: []string{"passport", "visa", "id ", " id", "document", "certificate"}, icon: "🛂"},
	{keywords: []string{"book", "license", "permit"}, icon: "📘"},
	{keywords: []string{"milk", "yogurt", "cream", "dairy"}, icon: "🥛"},
	{keywords: []string{"gym", "membership", "fitness", "pool"}, icon: "🏋"},
	{keywords: []string{"medicine", "pill", "prescription", "drug", "vitamin"}, icon: "💊"},
	{keywords: []string{"car", "vehicle", "driving", "mot"}, icon: "🚗"},
	{keywords: []string{"insurance", "warranty"}, icon: "🛡"},
	{keywords: []string{"netflix", "spotify", "subscription", "streaming", "tv"}, icon: "📺"},
	{keywords: []string{"flight", "plane", "travel"}, icon: "✈"},
	{keywords: []string{"food", "groceries", "bread", "meat"}, icon: "🍽"},
	{keywords: []string{"wine", "beer", "alcohol"}, icon: "🍷"},
	{keywords: []string{"water", "filter", "bottle"}, icon: "💧"},
	{keywords: []string{"card", "credit", "debit", "bank"}, icon: "💳"},
}

const defaultIcon = "📦"

// itemIcon returns the glyph for an item name.
func itemIcon(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, rule := range iconRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.icon
			}
		}
	}
	return defaultIcon
}
