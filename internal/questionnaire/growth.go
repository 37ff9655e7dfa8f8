package questionnaire

// Growth model belief dimensions.
const (
	BeliefMoney        = "金钱与价值"
	BeliefSelfWorth    = "自我价值"
	BeliefCapability   = "能力信念"
	BeliefRelationship = "关系模式"
	BeliefTime         = "时间与年龄"
	BeliefRisk         = "风险与失败"
	BeliefWorldview    = "世界观"
	BeliefPerfection   = "完美主义"
)

// Growth model behavior patterns.
const (
	BehaviorProcrastination = "拖延与逃避"
	BehaviorSelfSabotage    = "自我破坏"
	BehaviorOvercompensate  = "过度补偿"
	BehaviorOverdefend      = "过度防御"
	BehaviorEnergyDrain     = "能量内耗"
	BehaviorPerfection      = "完美主义行为"
)

// Partition names of the growth catalog. The same answer set is split two
// ways: belief dimensions and behavior patterns.
const (
	PartitionBeliefs   = "beliefs"
	PartitionBehaviors = "behaviors"
)

// Basic-info and open question ids of the growth catalog.
const (
	GrowthQAgeGroup          = 1
	GrowthQFocusArea         = 2
	GrowthQStuckDuration     = 3
	GrowthQChangeExpectation = 4
	GrowthQSatisfaction      = 5
	GrowthQLimitingVoice     = 48
	GrowthQFear              = 49
	GrowthQIdealFuture       = 50
)

var growthCatalog = mustCatalog("growth", growthQuestions,
	Partition{
		Name: PartitionBeliefs,
		Dimensions: []Dimension{
			{Name: BeliefMoney, QuestionIDs: []int{6, 7, 8}, NominalMax: 12},
			{Name: BeliefSelfWorth, QuestionIDs: []int{9, 10, 11}, NominalMax: 12},
			{Name: BeliefCapability, QuestionIDs: []int{12, 13, 14}, NominalMax: 12},
			{Name: BeliefRelationship, QuestionIDs: []int{15, 16, 17}, NominalMax: 12},
			{Name: BeliefTime, QuestionIDs: []int{18, 19, 20}, NominalMax: 12},
			{Name: BeliefRisk, QuestionIDs: []int{21, 22, 23}, NominalMax: 12},
			{Name: BeliefWorldview, QuestionIDs: []int{24, 25, 26}, NominalMax: 12},
			{Name: BeliefPerfection, QuestionIDs: []int{27, 28, 29}, NominalMax: 13},
		},
	},
	Partition{
		Name: PartitionBehaviors,
		Dimensions: []Dimension{
			{Name: BehaviorProcrastination, QuestionIDs: []int{30, 31, 32}, NominalMax: 12},
			{Name: BehaviorSelfSabotage, QuestionIDs: []int{33, 34, 35}, NominalMax: 13},
			{Name: BehaviorOvercompensate, QuestionIDs: []int{36, 37, 38}, NominalMax: 12},
			{Name: BehaviorOverdefend, QuestionIDs: []int{39, 40, 41}, NominalMax: 12},
			{Name: BehaviorEnergyDrain, QuestionIDs: []int{42, 43, 44}, NominalMax: 13},
			{Name: BehaviorPerfection, QuestionIDs: []int{45, 46, 47}, NominalMax: 13},
		},
	},
)

// GrowthCatalog returns the 50-question growth-obstacle catalog.
func GrowthCatalog() *Catalog { return growthCatalog }

// choice builds a CHOICE question whose option values run 0..n-1.
func choice(id int, dim, text string, labels ...string) Question {
	opts := make([]Option, len(labels))
	for i, l := range labels {
		opts[i] = Option{Value: float64(i), Label: l}
	}
	return Question{ID: id, Text: text, Type: TypeChoice, Dimension: dim, Options: opts}
}

// heavyChoice is choice with the top option weighted 5 instead of 4.
func heavyChoice(id int, dim, text string, labels ...string) Question {
	q := choice(id, dim, text, labels...)
	q.Options[len(q.Options)-1].Value = 5
	return q
}

var growthQuestions = []Question{
	// Basic info: not scored into any dimension.
	{
		ID:   GrowthQAgeGroup,
		Text: "你的年龄段是？",
		Type: TypeChoice,
		Options: []Option{
			{Value: 0, Label: "18-24岁"},
			{Value: 0, Label: "25-30岁"},
			{Value: 0, Label: "31-35岁"},
			{Value: 0, Label: "36-40岁"},
			{Value: 0, Label: "40岁以上"},
		},
	},
	{
		ID:   GrowthQFocusArea,
		Text: "你最想突破的领域是？",
		Type: TypeChoice,
		Options: []Option{
			{Value: 0, Label: "事业发展"},
			{Value: 0, Label: "财富积累"},
			{Value: 0, Label: "亲密关系"},
			{Value: 0, Label: "自我成长"},
			{Value: 0, Label: "身心状态"},
		},
	},
	{
		ID:   GrowthQStuckDuration,
		Text: "你感觉自己被卡在现状里多久了？",
		Type: TypeChoice,
		Options: []Option{
			{Value: 0, Label: "不到半年"},
			{Value: 0, Label: "半年到一年"},
			{Value: 0, Label: "一到三年"},
			{Value: 0, Label: "三年以上"},
		},
	},
	{
		ID:   GrowthQChangeExpectation,
		Text: "你希望多快看到改变？",
		Type: TypeChoice,
		Options: []Option{
			{Value: 0, Label: "慢慢来，先看清自己"},
			{Value: 0, Label: "三个月内有明显变化"},
			{Value: 0, Label: "一个月内就想改变"},
			{Value: 0, Label: "现在就必须改变"},
		},
	},
	{
		ID:   GrowthQSatisfaction,
		Text: "给你目前的生活满意度打个分（1-10）",
		Type: TypeScale,
	},

	// 金钱与价值
	choice(6, BeliefMoney, "当你想给自己花一笔较大的钱时：",
		"觉得值得就买", "会比较一下再买", "犹豫很久，觉得自己不配", "买了也会内疚好几天", "几乎从不为自己花钱"),
	choice(7, BeliefMoney, "谈到加薪或报价时，你的第一反应是：",
		"按市场价坦然开口", "稍微往低了报一点", "很难开口，怕对方觉得我贪心", "宁可少拿也不想谈钱", "总觉得自己的工作不值这个价"),
	choice(8, BeliefMoney, "你心里对\"有钱人\"的看法更接近：",
		"努力和机会的结果", "各有各的路", "多少用了些不光彩的手段", "有钱会让人变坏", "钱和我这样的人无缘"),

	// 自我价值
	choice(9, BeliefSelfWorth, "当别人真诚地夸奖你时：",
		"开心地说谢谢", "有点不好意思但能接受", "下意识地否认或转移话题", "怀疑对方别有用心", "觉得对方只是客套"),
	choice(10, BeliefSelfWorth, "你觉得自己值得被爱的前提是：",
		"不需要前提", "做真实的自己就好", "要足够懂事体贴", "要有足够的成就", "要一直有用、不给别人添麻烦"),
	choice(11, BeliefSelfWorth, "做错一件事之后，你脑海里的声音是：",
		"下次注意就好", "有点懊恼，很快过去", "反复回想自己有多糟", "证明我本来就不行", "我就是个失败的人"),

	// 能力信念
	choice(12, BeliefCapability, "面对一个从没做过的任务：",
		"兴奋，边做边学", "先查资料再动手", "担心做不好，迟迟不开始", "希望别人来做", "认定自己肯定不行"),
	choice(13, BeliefCapability, "当你取得一点成绩时，你通常归因于：",
		"自己的努力和能力", "努力加一点运气", "主要是运气好", "别人帮忙或标准放低了", "迟早会被发现我其实不行"),
	choice(14, BeliefCapability, "对于\"我能学会新技能\"这句话：",
		"完全同意", "大部分时候同意", "要看是什么技能", "我学东西总比别人慢", "我已经过了学习的年纪"),

	// 关系模式
	choice(15, BeliefRelationship, "在亲密关系里，你更常担心的是：",
		"很少担心什么", "偶尔担心沟通不畅", "对方会不会离开我", "自己是不是不够好", "关系终究会让我受伤"),
	choice(16, BeliefRelationship, "当你需要帮助时：",
		"直接开口", "想一想再开口", "尽量自己扛", "开口会让我觉得亏欠", "从不求助，怕被拒绝"),
	choice(17, BeliefRelationship, "和别人意见不一致时：",
		"说出想法一起讨论", "委婉表达自己的看法", "大多数时候选择让步", "怕冲突，假装同意", "事后一个人生闷气"),

	// 时间与年龄
	choice(18, BeliefTime, "想到自己的年龄：",
		"年龄只是数字", "偶尔有点感慨", "觉得有些事已经来不及", "经常拿自己和同龄人比", "觉得人生已经定型了"),
	choice(19, BeliefTime, "对于\"现在开始还来得及吗\"：",
		"任何时候开始都不晚", "晚一点但还来得及", "心里没底", "大概率来不及了", "早就错过了最好的时机"),
	choice(20, BeliefTime, "你对未来三年的感觉是：",
		"充满期待", "平稳向前", "有点迷茫", "和现在差不多", "想都不敢想"),

	// 风险与失败
	choice(21, BeliefRisk, "一个有风险但很有吸引力的机会出现时：",
		"评估后大胆尝试", "做好预案再尝试", "想很久，通常错过", "只要有失败可能就放弃", "根本不会去看这类机会"),
	choice(22, BeliefRisk, "失败对你来说意味着：",
		"学习的一部分", "有点难受但能接受", "很丢脸", "证明了我不行", "无法承受的打击"),
	choice(23, BeliefRisk, "你更认同哪句话：",
		"不试怎么知道", "小步试错", "稳妥最重要", "不做就不会错", "枪打出头鸟"),

	// 世界观
	choice(24, BeliefWorldview, "你觉得这个世界对普通人：",
		"充满机会", "机会和困难并存", "越来越难", "不公平的地方太多", "努力也没有用"),
	choice(25, BeliefWorldview, "看到别人成功，你通常认为：",
		"值得学习", "有方法也有运气", "主要靠背景", "与我无关", "世界本来就偏心"),
	choice(26, BeliefWorldview, "你对他人的基本态度是：",
		"大多数人是善意的", "先信任再观察", "防人之心不可无", "人心难测", "别人迟早会利用我"),

	// 完美主义
	choice(27, BeliefPerfection, "交付一份工作前：",
		"达到标准就交", "检查一两遍就交", "反复修改到最后一刻", "总觉得还差一点，不敢交", "宁可拖到不用交"),
	choice(28, BeliefPerfection, "对你来说，80分意味着：",
		"相当不错", "还可以更好", "不太满意", "和不及格差不多", "是一种失败"),
	heavyChoice(29, BeliefPerfection, "如果不能做到最好，你会：",
		"先完成再完善", "尽力就好", "很焦虑", "干脆不开始", "觉得自己一无是处"),

	// 拖延与逃避
	choice(30, BehaviorProcrastination, "面对重要但困难的任务：",
		"优先处理", "安排好时间去做", "先做些简单的事热身", "一直拖到截止前", "拖到彻底放弃"),
	choice(31, BehaviorProcrastination, "刷手机、追剧对你来说更像是：",
		"单纯的放松", "偶尔的奖励", "逃避压力的方式", "停不下来的习惯", "每天唯一的安全区"),
	choice(32, BehaviorProcrastination, "有个让你紧张的电话或消息要回：",
		"马上处理", "当天内处理", "拖几天", "等对方再来催", "假装没看到"),

	// 自我破坏
	choice(33, BehaviorSelfSabotage, "当一个好机会真的来到你面前：",
		"抓住它", "准备好后接住", "开始找理由说服自己不适合", "在关键时刻掉链子", "亲手把它推开"),
	choice(34, BehaviorSelfSabotage, "事情进展顺利的时候，你会：",
		"享受过程", "保持节奏", "隐隐不安，觉得要出事", "做点什么把它搞砸", "提前退出免得失望"),
	heavyChoice(35, BehaviorSelfSabotage, "你是否有过明知不该做却还是做了的事：",
		"几乎没有", "偶尔", "经常，事后很后悔", "这几乎是我的固定模式", "我好像总在和自己作对"),

	// 过度补偿
	choice(36, BehaviorOvercompensate, "为了证明自己，你会：",
		"不太需要证明", "用结果说话", "比别人多做很多", "揽下超出能力的事", "累垮了也不敢停"),
	choice(37, BehaviorOvercompensate, "别人对你不满意时：",
		"就事论事", "解释清楚", "加倍付出去弥补", "讨好到失去自我", "觉得必须做到完美才被原谅"),
	choice(38, BehaviorOvercompensate, "你会不会刻意展示自己过得很好：",
		"不会", "很少", "有时会", "经常会", "几乎每天都在经营形象"),

	// 过度防御
	choice(39, BehaviorOverdefend, "收到批评时，你的第一反应是：",
		"看看有没有道理", "有点难受但会思考", "立刻解释", "反击回去", "从此疏远对方"),
	choice(40, BehaviorOverdefend, "在新的环境里，你通常：",
		"主动融入", "慢慢熟悉", "先观察不出声", "保持距离保护自己", "竖起全部防备"),
	choice(41, BehaviorOverdefend, "你愿意向别人展示脆弱吗：",
		"愿意", "对亲近的人愿意", "很少", "几乎不会", "脆弱等于给人把柄"),

	// 能量内耗
	choice(42, BehaviorEnergyDrain, "一天结束时，你的疲惫更多来自：",
		"实际做的事", "事情和情绪各一半", "脑子里反复想的事", "和自己的拉扯", "什么都没做却累瘫"),
	choice(43, BehaviorEnergyDrain, "做决定时，你需要：",
		"很快做出决定", "想清楚后决定", "反复权衡好几天", "问遍所有人", "一直拖着不决定"),
	heavyChoice(44, BehaviorEnergyDrain, "睡前你的大脑通常：",
		"很快安静下来", "想想明天的安排", "回放白天的对话", "越想越焦虑", "整夜停不下来"),

	// 完美主义行为
	choice(45, BehaviorPerfection, "写一条重要的消息，你会：",
		"写完就发", "读一遍再发", "改好几遍", "写了又删", "最后干脆不发"),
	choice(46, BehaviorPerfection, "开始一件新事情之前，你需要：",
		"有个方向就开始", "做个简单计划", "做足准备", "确保万无一失", "准备到错过时机"),
	heavyChoice(47, BehaviorPerfection, "别人帮你做的事不符合你的标准时：",
		"可以接受", "提点建议", "自己再改一遍", "以后都自己来", "全部推倒重来"),

	// Open questions.
	{
		ID:          GrowthQLimitingVoice,
		Text:        "当你想要突破时，内心最常出现的那个声音在说什么？",
		Type:        TypeOpen,
		Placeholder: "比如\"你不行的\"\"别折腾了\"\"万一失败了多丢人\"",
	},
	{
		ID:          GrowthQFear,
		Text:        "如果真的突破了现状，你最害怕发生什么？",
		Type:        TypeOpen,
		Placeholder: "可能是被人议论、失去现有的安稳，或是发现自己其实没那么好",
	},
	{
		ID:          GrowthQIdealFuture,
		Text:        "描述一下一年后理想中的自己，是什么样子？",
		Type:        TypeOpen,
		Placeholder: "在做什么、和谁在一起、每天的状态是怎样的",
	},
}
