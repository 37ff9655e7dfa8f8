package questionnaire

// Drain model dimension names.
const (
	DrainThinking = "思维内耗"
	DrainEmotion  = "情绪内耗"
	DrainAction   = "行动内耗"
	DrainRelation = "关系内耗"
)

// PartitionDrain is the single dimension partition of the drain catalog.
const PartitionDrain = "drain"

// Open question ids of the drain catalog.
const (
	DrainQBreakdown = 36
	DrainQVacation  = 37
	DrainQStatus    = 38
)

var drainCatalog = mustCatalog("drain", drainQuestions,
	Partition{
		Name: PartitionDrain,
		Dimensions: []Dimension{
			{Name: DrainThinking, QuestionIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, NominalMax: 28},
			{Name: DrainEmotion, QuestionIDs: []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, NominalMax: 28},
			{Name: DrainAction, QuestionIDs: []int{21, 22, 23, 24, 25, 26, 27, 28}, NominalMax: 24},
			{Name: DrainRelation, QuestionIDs: []int{29, 30, 31, 32, 33, 34, 35}, NominalMax: 20},
		},
	},
)

// DrainCatalog returns the 38-question mental-energy-drain catalog.
func DrainCatalog() *Catalog { return drainCatalog }

var drainQuestions = []Question{
	{
		ID:        1,
		Text:      "今晚吃什么这个世纪难题，你一般纠结多久？",
		Type:      TypeChoice,
		Dimension: DrainThinking,
		Options: []Option{
			{Value: 0, Label: "秒选！跟着感觉走"},
			{Value: 1, Label: "5-10分钟，问问室友意见"},
			{Value: 2, Label: "半小时起步，最后还是随便吃"},
			{Value: 3, Label: "能想一下午，纠结到错过饭点"},
		},
	},
	{
		ID:        2,
		Text:      "发消息对方半小时没回，你的脑内剧场：",
		Type:      TypeChoice,
		Dimension: DrainThinking,
		Options: []Option{
			{Value: 0, Label: "可能在忙，该干嘛干嘛"},
			{Value: 1, Label: "看一眼手机，继续做事"},
			{Value: 2, Label: "反复确认消息内容，是不是说错话了"},
			{Value: 3, Label: "已经脑补出一部8集连续剧"},
		},
	},
	{
		ID:        3,
		Text:      "睡前的你最常做什么？",
		Type:      TypeChoice,
		Dimension: DrainThinking,
		Options: []Option{
			{Value: 0, Label: "倒头就睡/刷会儿视频就困了"},
			{Value: 1, Label: "想想明天的安排"},
			{Value: 2, Label: "复盘今天的社交细节，越想越清醒"},
			{Value: 3, Label: "从小学吵架开始反思人生"},
		},
	},
	{
		ID:        4,
		Text:      "做决定的时候，你的状态是：",
		Type:      TypeChoice,
		Dimension: DrainThinking,
		Options: []Option{
			{Value: 0, Label: "快准狠，错了再说"},
			{Value: 1, Label: "列个pros & cons，理性分析"},
			{Value: 2, Label: "反复横跳，问遍所有朋友"},
			{Value: 3, Label: "选择困难晚期，最后让别人帮我选"},
		},
	},
	{
		ID:        5,
		Text:      "看到朋友圈/小红书别人的精彩生活：",
		Type:      TypeChoice,
		Dimension: DrainThinking,
		Options: []Option{
			{Value: 0, Label: "点个赞，该干嘛干嘛"},
			{Value: 1, Label: "有点羡慕，但很快就忘了"},
			{Value: 2, Label: "开始焦虑自己是不是太废了"},
			{Value: 3, Label: "直接emo，陷入自我怀疑深渊"},
		},
	},
	{
		ID:        6,
		Text:      "工作/学习时，脑子突然冒出奇怪的想法：",
		Type:      TypeChoice,
		Dimension: DrainThinking,
		Options: []Option{
			{Value: 0, Label: "几乎不会，专注力还行"},
			{Value: 1, Label: "偶尔走神，能拉回来"},
			{Value: 2, Label: "经常走神，效率打折"},
			{Value: 3, Label: "人在自习室，心在环游世界"},
		},
	},
	{
		ID:        7,
		Text:      `别人的一句"你好像变了"：`,
		Type:      TypeChoice,
		Dimension: DrainThinking,
		Options: []Option{
			{Value: 0, Label: "哦？怎么变了？正常交流"},
			{Value: 1, Label: "会想一下，但不会太在意"},
			{Value: 2, Label: "开始疯狂回忆自己做了什么"},
			{Value: 3, Label: "失眠级别的困扰，反复求证"},
		},
	},
	{
		ID:        8,
		Text:      "立了flag没完成：",
		Type:      TypeChoice,
		Dimension: DrainThinking,
		Options: []Option{
			{Value: 0, Label: "没事，明天继续"},
			{Value: 1, Label: "有点小愧疚，调整计划"},
			{Value: 2, Label: "狠狠自责，觉得自己很失败"},
			{Value: 3, Label: "破罐破摔，干脆躺平"},
		},
	},
	{
		ID:        9,
		Text:      `看到热搜"30岁前必须..."这类内容：`,
		Type:      TypeChoice,
		Dimension: DrainThinking,
		Options: []Option{
			{Value: 0, Label: "笑笑划走，不care"},
			{Value: 0.5, Label: "看看就算，不会对号入座"},
			{Value: 1, Label: "有点慌，开始对比自己"},
			{Value: 2, Label: "直接破防，陷入年龄焦虑"},
		},
	},
	{
		ID:        10,
		Text:      "做一件事前，你的内心OS：",
		Type:      TypeChoice,
		Dimension: DrainThinking,
		Options: []Option{
			{Value: 0, Label: "冲就完了！"},
			{Value: 0.5, Label: "简单预想一下可能的情况"},
			{Value: 1, Label: "预演N种尴尬场景"},
			{Value: 2, Label: "光想象就已经社死100次"},
		},
	},
	{
		ID:        11,
		Text:      "最近一周，你的情绪状态：",
		Type:      TypeChoice,
		Dimension: DrainEmotion,
		Options: []Option{
			{Value: 0, Label: "整体稳定，该快乐快乐"},
			{Value: 1, Label: "小波动，但恢复得快"},
			{Value: 2, Label: "像坐过山车，忽上忽下"},
			{Value: 3, Label: "持续低气压/麻木"},
		},
	},
	{
		ID:        12,
		Text:      "突然想哭的频率：",
		Type:      TypeChoice,
		Dimension: DrainEmotion,
		Options: []Option{
			{Value: 0, Label: "很少，除非真的很难过"},
			{Value: 1, Label: "偶尔，看个视频会泪目"},
			{Value: 2, Label: "经常，一点小事就绷不住"},
			{Value: 3, Label: "已经哭不出来了/每天都在哭"},
		},
	},
	{
		ID:        13,
		Text:      `你的"电量"一般能维持：`,
		Type:      TypeChoice,
		Dimension: DrainEmotion,
		Options: []Option{
			{Value: 0, Label: "一整天都很有活力"},
			{Value: 1, Label: "下午开始有点累"},
			{Value: 2, Label: "刚起床就想下班/放学"},
			{Value: 3, Label: "长期低电量，靠咖啡续命"},
		},
	},
	{
		ID:        14,
		Text:      "面对他人的情绪垃圾：",
		Type:      TypeChoice,
		Dimension: DrainEmotion,
		Options: []Option{
			{Value: 0, Label: "能安慰但不会带入自己"},
			{Value: 1, Label: "短暂受影响，睡一觉就好"},
			{Value: 2, Label: "像海绵一样吸收，很难排解"},
			{Value: 3, Label: "已经被压垮，自己都自顾不暇"},
		},
	},
	{
		ID:        15,
		Text:      "社交后的状态：",
		Type:      TypeChoice,
		Dimension: DrainEmotion,
		Options: []Option{
			{Value: 0, Label: "充电完成！好开心"},
			{Value: 1, Label: "看情况，有时累有时爽"},
			{Value: 2, Label: "需要独处三天恢复"},
			{Value: 3, Label: "每次社交都像渡劫"},
		},
	},
	{
		ID:        16,
		Text:      `对于"摆烂"这件事：`,
		Type:      TypeChoice,
		Dimension: DrainEmotion,
		Options: []Option{
			{Value: 0, Label: "偶尔放松，不觉得有问题"},
			{Value: 1, Label: "摆烂后会有点罪恶感"},
			{Value: 2, Label: "一边摆烂一边狠狠自责"},
			{Value: 3, Label: "已经摆麻了但依然焦虑"},
		},
	},
	{
		ID:        17,
		Text:      "你的快乐阈值：",
		Type:      TypeChoice,
		Dimension: DrainEmotion,
		Options: []Option{
			{Value: 0, Label: "很容易快乐，小确幸就能开心"},
			{Value: 1, Label: "正常水平，该乐就乐"},
			{Value: 2, Label: "越来越难快乐起来"},
			{Value: 3, Label: "已经不记得快乐是什么感觉"},
		},
	},
	{
		ID:        18,
		Text:      "半夜刷手机的原因：",
		Type:      TypeChoice,
		Dimension: DrainEmotion,
		Options: []Option{
			{Value: 0, Label: "单纯不想睡/在看有趣的内容"},
			{Value: 1, Label: "有点焦虑，需要分散注意力"},
			{Value: 2, Label: "越刷越空虚，但停不下来"},
			{Value: 3, Label: "不敢面对关机后的自己"},
		},
	},
	{
		ID:        19,
		Text:      `对于"还行""无所谓"这类词：`,
		Type:      TypeChoice,
		Dimension: DrainEmotion,
		Options: []Option{
			{Value: 0, Label: "偶尔使用，真的没啥感觉"},
			{Value: 0.5, Label: "有时候懒得解释就这么说"},
			{Value: 1, Label: "高频使用，不知道怎么表达了"},
			{Value: 2, Label: "口头禅，已经情绪钝化"},
		},
	},
	{
		ID:        20,
		Text:      "你的崩溃周期：",
		Type:      TypeChoice,
		Dimension: DrainEmotion,
		Options: []Option{
			{Value: 0, Label: "很少崩溃，心态稳"},
			{Value: 0.5, Label: "几个月一次，有明确原因"},
			{Value: 1, Label: "一个月好几次小崩溃"},
			{Value: 2, Label: "随时随地，一个眼神就能破防"},
		},
	},
	{
		ID:        21,
		Text:      "你的待办清单现状：",
		Type:      TypeChoice,
		Dimension: DrainAction,
		Options: []Option{
			{Value: 0, Label: "基本都能完成，有条不紊"},
			{Value: 1, Label: "完成70-80%，可以接受"},
			{Value: 2, Label: "永远在拖延，永远在补救"},
			{Value: 3, Label: "已经不敢列清单了"},
		},
	},
	{
		ID:        22,
		Text:      "早上起床的状态：",
		Type:      TypeChoice,
		Dimension: DrainAction,
		Options: []Option{
			{Value: 0, Label: "闹钟一响就起，开启新的一天"},
			{Value: 1, Label: "赖床10分钟，但不会迟到"},
			{Value: 2, Label: "需要定7-8个闹钟，起床困难户"},
			{Value: 3, Label: "每天都在生死边缘挣扎"},
		},
	},
	{
		ID:        23,
		Text:      "想学个新技能/开始健身：",
		Type:      TypeChoice,
		Dimension: DrainAction,
		Options: []Option{
			{Value: 0, Label: "说干就干，行动力max"},
			{Value: 1, Label: "准备一下，很快能开始"},
			{Value: 2, Label: "收藏夹吃灰，攻略看了800遍没动手"},
			{Value: 3, Label: "光想想就累了，算了"},
		},
	},
	{
		ID:        24,
		Text:      "你的房间/工位状态：",
		Type:      TypeChoice,
		Dimension: DrainAction,
		Options: []Option{
			{Value: 0, Label: "整洁有序，定期收拾"},
			{Value: 1, Label: "有点乱但能接受"},
			{Value: 2, Label: "乱到自己都看不下去但懒得收"},
			{Value: 3, Label: "灾难现场，已经放弃治疗"},
		},
	},
	{
		ID:        25,
		Text:      "约朋友见面：",
		Type:      TypeChoice,
		Dimension: DrainAction,
		Options: []Option{
			{Value: 0, Label: "积极响应，准时赴约"},
			{Value: 1, Label: "看心情和对象"},
			{Value: 2, Label: "答应了但出门前各种纠结"},
			{Value: 3, Label: "能推就推，不想出门"},
		},
	},
	{
		ID:        26,
		Text:      "面对deadline：",
		Type:      TypeChoice,
		Dimension: DrainAction,
		Options: []Option{
			{Value: 0, Label: "提前完成，留有余地"},
			{Value: 1, Label: "按时完成，不拖拉"},
			{Value: 2, Label: "压线冲刺型选手"},
			{Value: 3, Label: "不到最后一秒不动手"},
		},
	},
	{
		ID:        27,
		Text:      "买了网课/办了健身卡：",
		Type:      TypeChoice,
		Dimension: DrainAction,
		Options: []Option{
			{Value: 0, Label: "物尽其用，好好学/练"},
			{Value: 1, Label: "至少用了一半"},
			{Value: 2, Label: "用了不到1/3，在吃灰"},
			{Value: 3, Label: "买了=学了，充值信仰"},
		},
	},
	{
		ID:        28,
		Text:      "想做的事情vs实际在做的事：",
		Type:      TypeChoice,
		Dimension: DrainAction,
		Options: []Option{
			{Value: 0, Label: "基本一致，执行力不错"},
			{Value: 1, Label: "有些偏差但还好"},
			{Value: 2, Label: "完全相反，人在床上心在远方"},
			{Value: 3, Label: "已经不敢想了，想了更难受"},
		},
	},
	{
		ID:        29,
		Text:      "在群聊里：",
		Type:      TypeChoice,
		Dimension: DrainRelation,
		Options: []Option{
			{Value: 0, Label: "积极互动，该说就说"},
			{Value: 1, Label: "看到感兴趣的会聊几句"},
			{Value: 2, Label: "打字删除打字删除，最后不发了"},
			{Value: 3, Label: "潜水专业户，生怕说错话"},
		},
	},
	{
		ID:        30,
		Text:      "别人找你帮忙：",
		Type:      TypeChoice,
		Dimension: DrainRelation,
		Options: []Option{
			{Value: 0, Label: "能帮就帮，不能就拒绝"},
			{Value: 1, Label: "稍微考虑一下，给出答复"},
			{Value: 2, Label: "很难拒绝，硬着头皮答应"},
			{Value: 3, Label: "已经帮到自己很累还不敢说"},
		},
	},
	{
		ID:        31,
		Text:      "维持一段关系你觉得：",
		Type:      TypeChoice,
		Dimension: DrainRelation,
		Options: []Option{
			{Value: 0, Label: "自然而然，不费力"},
			{Value: 1, Label: "需要经营但还好"},
			{Value: 2, Label: "很累，总在察言观色"},
			{Value: 3, Label: "精疲力尽，想逃离社交"},
		},
	},
	{
		ID:        32,
		Text:      "发朋友圈/发微博：",
		Type:      TypeChoice,
		Dimension: DrainRelation,
		Options: []Option{
			{Value: 0, Label: "想发就发，不在意别人看法"},
			{Value: 1, Label: "稍微注意一下措辞"},
			{Value: 2, Label: "反复修改，精心设计可见范围"},
			{Value: 3, Label: "已经不敢发了/发完秒删"},
		},
	},
	{
		ID:        33,
		Text:      "在关系中的位置感：",
		Type:      TypeChoice,
		Dimension: DrainRelation,
		Options: []Option{
			{Value: 0, Label: "挺清晰的，知道谁是真朋友"},
			{Value: 1, Label: "大部分时候清楚"},
			{Value: 2, Label: "经常不确定，患得患失"},
			{Value: 3, Label: "完全迷失，觉得自己可有可无"},
		},
	},
	{
		ID:        34,
		Text:      `看到别人"在线"但不回你消息：`,
		Type:      TypeChoice,
		Dimension: DrainRelation,
		Options: []Option{
			{Value: 0, Label: "没啥感觉，可能在忙别的"},
			{Value: 0.5, Label: "有点在意但能理解"},
			{Value: 1, Label: "开始脑补各种被忽视的原因"},
			{Value: 2, Label: "直接emo，觉得不被重视"},
		},
	},
	{
		ID:        35,
		Text:      `你对"讨好型人格"的共鸣度：`,
		Type:      TypeChoice,
		Dimension: DrainRelation,
		Options: []Option{
			{Value: 0, Label: "完全不懂，我挺自我的"},
			{Value: 0.5, Label: "偶尔会，但不严重"},
			{Value: 1, Label: "中枪了，经常委屈自己"},
			{Value: 2, Label: "完全就是我，为别人活着"},
		},
	},
	{
		ID:          36,
		Text:        `最近一次"精神内耗"到崩溃是什么时候？当时在纠结/担心什么？`,
		Type:        TypeOpen,
		Placeholder: `比如"凌晨3点还在想白天开会时说的一句话是不是冒犯了同事"`,
	},
	{
		ID:          37,
		Text:        "如果能给此刻的自己放个假，你最想做什么？为什么？",
		Type:        TypeOpen,
		Placeholder: "是想一个人发呆，还是和朋友疯玩，或是做点一直想做但没做的事？",
	},
	{
		ID:          38,
		Text:        "用三个词形容现在的生活状态，然后说说你理想中的状态是什么样的？",
		Type:        TypeOpen,
		Placeholder: `比如"焦虑、疲惫、麻木"vs"松弛、有趣、掌控感"`,
	},
}
