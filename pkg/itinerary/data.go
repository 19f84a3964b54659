package itinerary

import "time"

// MissionStart is the departure instant the countdown targets.
// The source plan arms it in local wall-clock time.
var MissionStart = time.Date(2026, time.January, 8, 0, 0, 0, 0, time.Local)

// IntelRecords are the Visit Japan Web registration fields for the group.
var IntelRecords = []IntelRecord{
	{Label: "航班號碼 (Flight)", Value: "IT254", FieldID: "vjw-flight"},
	{Label: "郵遞區號 (Zip Code)", Value: "024-0061", FieldID: "vjw-zip"},
	{
		Label:    "住宿飯店 (Hotel Name)",
		Value:    "Hotel Mets Kitakami",
		SubValue: "岩手県北上市大通り１丁目１－３４",
		FieldID:  "vjw-hotel",
	},
	{Label: "聯絡電話 (Phone)", Value: "81197612222", FieldID: "vjw-phone"},
}

// Missions is the full hand-authored itinerary. Defined at build time,
// never mutated at runtime.
var Missions = []DayMission{
	{
		ID:    "d1",
		Title: "階段一：滲透與補給",
		Date:  "2026/01/08 (Wed)",
		Tasks: []Task{
			{
				ID:     "d1-1",
				Time:   "18:45",
				Label:  "抵達仙台機場 (SDJ)",
				Detail: "領取行李與出關，預留 1 小時。",
				Note:   "檢查所有雪具袋是否確實抵達，IT254 航班若延誤，後續新幹線需即時調整。",
				Icon:   IconFlight,
			},
			{
				ID:      "d1-2",
				Time:    "19:45",
				Label:   "搭乘仙台機場 Access 線",
				Link:    "https://www.senat.co.jp/timetable",
				Detail:  "目的地：仙台車站 (車程約 25 分鐘)",
				Warning: "6 個人加雪包在電車上很占空間，儘量往車廂兩端移動。",
				Icon:    IconTrain,
			},
			{
				ID:     "d1-3",
				Time:   "21:14",
				Label:  "東北新幹線 (Yamabiko 71)",
				Link:   "https://transit.yahoo.co.jp/",
				Detail: "仙台 -> 北上 (22:03 抵達)",
				Note:   "Hotel Mets Kitakami 就在站旁，22:15 即可完成入住。",
				Icon:   IconTrain,
			},
			{
				ID:     "d1-4",
				Time:   "22:30",
				Label:  "深夜補給：AEON Town 北上",
				Link:   "https://www.aeontown.co.jp/kitakami/",
				Detail: "MaxValu 超市 24 小時營業",
				Note:   "飯店放下行李後立刻前往。這是你們這幾天唯一的超市機會。",
				Icon:   IconSupply,
			},
		},
	},
	{
		ID:    "d2",
		Title: "階段二：首日攻頂",
		Date:  "2026/01/09 (Thu)",
		Tasks: []Task{
			{
				ID:      "d2-1",
				Time:    "06:40",
				Label:   "搭乘第一班接駁巴士",
				Link:    "https://www.getokogen.com/winter/access/bus.html",
				Detail:  "地點：北上站東口站牌",
				Warning: "06:25 全員集結完畢。從飯店走到東口只需 3 分鐘。",
				Icon:    IconMountain,
			},
			{
				ID:     "d2-2",
				Time:   "08:00",
				Label:  "最佳著裝時間",
				Detail: "於 Center House 租借區完成換裝",
				Note:   "雪場飯店入住前，先把大行李交給櫃檯，換好衣服直接上纜車。",
				Icon:   IconMountain,
			},
			{
				ID:     "d2-3",
				Time:   "15:00",
				Label:  "飯店入住 (Check-in)",
				Detail: "夏油高原雪場飯店",
				Note:   "下午三點後體力下滑，回飯店辦理入住並小憩。",
				Icon:   IconMountain,
			},
		},
	},
	{
		ID:    "d6",
		Title: "階段三：撤離計畫",
		Date:  "2026/01/13 (Tue)",
		Tasks: []Task{
			{
				ID:     "d6-1",
				Time:   "07:30",
				Label:  "全員 Check-out",
				Detail: "放棄晨間滑雪，以準時撤離為最高原則。",
				Note:   "最後檢查房間是否有遺落的充電線或護目鏡。",
				Icon:   IconMountain,
			},
			{
				ID:      "d6-2",
				Time:    "09:00",
				Label:   "接駁巴士撤離",
				Link:    "https://www.getokogen.com/winter/access/bus.html",
				Detail:  "目的地：北上車站",
				Warning: "這是最穩定的回程起點，不要嘗試搭更晚的班次。",
				Icon:    IconTrain,
			},
			{
				ID:     "d6-3",
				Time:   "10:14",
				Label:  "東北新幹線回程",
				Detail: "北上 -> 仙台 (11:05 抵達)",
				Note:   "抵達仙台後，利用車站 2F 的「行李寄放處」處理 6 人的重裝。",
				Icon:   IconTrain,
			},
			{
				ID:      "d6-4",
				Time:    "17:08",
				Label:   "最後衝刺：仙台機場線",
				Link:    "https://www.senat.co.jp/timetable",
				Detail:  "確保 17:33 抵達機場，對應 IT254 班機的回程。",
				Warning: "週二傍晚是通勤高峰，17:08 是最晚的安全紅線。",
				Icon:    IconFlight,
			},
		},
	},
}

// BackupPlans hold the contingency logistics for the two critical legs.
var BackupPlans = []BackupPlan{
	{
		Type:        PlanArrival,
		Title:       "備援計劃：去程雙車突擊",
		RedLine:     "06:55",
		RedLineNote: "若 06:55 巴士未抵達站牌、行李艙滿載或無法全員上車，立即啟動叫車。",
		Steps: []PlanStep{
			{
				Title: "第一步：App 叫車與車資預估",
				Body:  "優先使用 GO App 定位：北上駅東口。NAVITIME 可查即時路況與跳錶預估。",
			},
		},
		Destination: "岩手県北上市和賀町岩崎新田 (夏油高原スキー場)",
		Budget:      "單車預估 8,500 - 11,000 JPY。確認 App 綁定信用卡。",
		FinalTarget: "於 07:50 前抵達雪場 Center House。",
	},
	{
		Type:        PlanEvacuation,
		Title:       "備援計劃：回程撤離應變",
		RedLine:     "09:15",
		RedLineNote: "若 09:15 巴士未抵達雪場入口、山路封閉或接駁艙凍結，立即請求飯店協助。",
		Steps: []PlanStep{
			{
				Title: "第一步：飯店櫃檯介入 (Front Desk Liaison)",
				Body:  "深山叫車極難，請立即請飯店櫃檯代為聯繫車行。強調任務：「Must catch the 10:14 Shinkansen.」",
			},
			{
				Title: "趕上 IT255 的「最後紅線」",
				Body:  "【最後呼喚】Yamabiko 70 號：16:14 北上發車 → 17:05 抵達仙台，接續 17:08 (快速) 或 17:28 (普通) 機場線。",
			},
			{
				Title: "前瞻行動：預約策略",
				Body:  "1/12 晚上請先行請飯店確認隔天早上計程車備援可能性。若天候極差，建議直接預訂 09:00 兩部計程車作為「撤離保險」。",
			},
		},
		Destination: "JR北上駅 (東口/西口)",
		Budget:      "專案管理者需備妥至少 40,000 JPY 來回總備援金。",
		FinalTarget: "於 10:00 前抵達北上站，確保搭上 10:14 新幹線。",
	},
}
