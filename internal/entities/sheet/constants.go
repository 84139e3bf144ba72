package sheet

// Abilities
const (
	ScoreStr ScoreKey = "str"
	ScoreDex ScoreKey = "dex"
	ScoreCon ScoreKey = "con"
	ScoreInt ScoreKey = "int"
	ScoreWis ScoreKey = "wis"
	ScoreCha ScoreKey = "cha"
)

// Saves
const (
	ScoreToughness ScoreKey = "tou"
	ScoreFortitude ScoreKey = "for"
	ScoreReflex    ScoreKey = "ref"
	ScoreWill      ScoreKey = "wil"
)

// Other trackers
const (
	ScoreHeroPoints      ScoreKey = "heroPoints"
	ScorePowerLevel      ScoreKey = "powerLevel"
	ScoreBruises         ScoreKey = "bruises"
	ScoreInjuries        ScoreKey = "injuries"
	ScoreAttackBonus     ScoreKey = "attackBonus"
	ScoreMeleeBonus      ScoreKey = "meleeBonus"
	ScoreRangedBonus     ScoreKey = "rangedBonus"
	ScoreDefenseBonus    ScoreKey = "defenseBonus"
	ScoreExtraDodge      ScoreKey = "extraDodge"
	ScoreSizeBonus       ScoreKey = "sizeBonus"
	ScoreInitiativePower ScoreKey = "initiativePower"
	ScoreInitiativeFeat  ScoreKey = "initiativeFeat"
)

// AllScores lists every score key the catalog must define
var AllScores = []ScoreKey{
	ScoreStr, ScoreDex, ScoreCon, ScoreInt, ScoreWis, ScoreCha,
	ScoreToughness, ScoreFortitude, ScoreReflex, ScoreWill,
	ScoreHeroPoints, ScorePowerLevel, ScoreBruises, ScoreInjuries,
	ScoreAttackBonus, ScoreMeleeBonus, ScoreRangedBonus, ScoreDefenseBonus,
	ScoreExtraDodge, ScoreSizeBonus, ScoreInitiativePower, ScoreInitiativeFeat,
}

// Skills with specializations
const (
	SkillCraft      SkillKey = "craft"
	SkillKnowledge  SkillKey = "knowledge"
	SkillLanguage   SkillKey = "language"
	SkillPerform    SkillKey = "perform"
	SkillProfession SkillKey = "profession"
)
