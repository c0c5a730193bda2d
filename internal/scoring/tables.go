// Package scoring implements the linear scoring model: a weighted-sum digital
// skill index compared against regional baselines, and a multiplicative
// log-linear employment probability estimate. Both are pure functions over
// one flat answer record and the static tables below; the tables are loaded
// once and shared read-only.
package scoring

// SkillIDs fixes the skill order for breakdowns
var SkillIDs = []string{
	"skill_1", "skill_2", "skill_3", "skill_4", "skill_5",
	"skill_6", "skill_7", "skill_8", "skill_9", "skill_10",
	"skill_11", "skill_12", "skill_13", "skill_14", "skill_15",
}

// SkillWeights maps a digital skill to its contribution to the index.
// Unknown ids weigh 0, so the table can grow without breaking old records.
var SkillWeights = map[string]float64{
	"skill_1":  4.5,  // information search
	"skill_2":  4.0,  // email
	"skill_3":  5.5,  // text documents
	"skill_4":  6.5,  // spreadsheets
	"skill_5":  5.0,  // presentations
	"skill_6":  3.5,  // messengers
	"skill_7":  4.0,  // social networks
	"skill_8":  6.0,  // online banking
	"skill_9":  6.5,  // government e-services
	"skill_10": 5.0,  // online shopping
	"skill_11": 4.5,  // video calls
	"skill_12": 7.0,  // cloud storage
	"skill_13": 8.0,  // graphics editors
	"skill_14": 10.5, // data analysis
	"skill_15": 12.0, // programming
}

// DefaultRegion is assumed when the record carries no recognizable region
const DefaultRegion = "moscow"

// RegionalAverages holds the baseline digital skill index per region. The
// percentile ranks an individual's total against this distribution of
// regional means, not against other individuals.
var RegionalAverages = map[string]float64{
	"adygea":              38.2,
	"altai_krai":          37.5,
	"altai_republic":      34.8,
	"amur":                38.9,
	"arkhangelsk":         42.3,
	"astrakhan":           39.1,
	"bashkortostan":       44.6,
	"belgorod":            43.2,
	"bryansk":             38.7,
	"buryatia":            36.4,
	"chechnya":            31.9,
	"chelyabinsk":         45.8,
	"chukotka":            37.2,
	"chuvashia":           41.5,
	"crimea":              37.8,
	"dagestan":            32.6,
	"ingushetia":          31.2,
	"irkutsk":             42.7,
	"ivanovo":             39.4,
	"jewish_autonomous":   35.1,
	"kabardino_balkaria":  34.3,
	"kaliningrad":         46.9,
	"kalmykia":            35.6,
	"kaluga":              44.1,
	"kamchatka":           40.8,
	"karachay_cherkessia": 33.7,
	"karelia":             42.9,
	"kemerovo":            41.2,
	"khabarovsk":          44.3,
	"khakassia":           37.9,
	"khanty_mansi":        49.5,
	"kirov":               40.2,
	"komi":                42.1,
	"kostroma":            38.4,
	"krasnodar":           45.3,
	"krasnoyarsk":         43.8,
	"kurgan":              36.8,
	"kursk":               40.6,
	"leningrad_oblast":    47.4,
	"lipetsk":             41.8,
	"magadan":             41.6,
	"mari_el":             38.1,
	"mordovia":            39.8,
	"moscow":              58.4,
	"moscow_oblast":       52.7,
	"murmansk":            45.1,
	"nenets":              39.6,
	"nizhny_novgorod":     46.2,
	"north_ossetia":       35.4,
	"novgorod":            40.4,
	"novosibirsk":         47.8,
	"omsk":                42.4,
	"orenburg":            40.1,
	"oryol":               38.6,
	"penza":               39.9,
	"perm":                44.8,
	"primorsky":           43.5,
	"pskov":               37.6,
	"rostov":              43.9,
	"ryazan":              41.3,
	"saint_petersburg":    56.2,
	"sakha":               40.9,
	"sakhalin":            43.1,
	"samara":              45.6,
	"saratov":             41.9,
	"sevastopol":          41.1,
	"smolensk":            38.8,
	"stavropol":           40.7,
	"sverdlovsk":          47.2,
	"tambov":              38.3,
	"tatarstan":           52.1,
	"tomsk":               46.5,
	"tula":                42.6,
	"tuva":                30.8,
	"tver":                40.3,
	"tyumen":              48.7,
	"udmurtia":            41.7,
	"ulyanovsk":           40.8,
	"vladimir":            40.5,
	"volgograd":           42.2,
	"vologda":             39.7,
	"voronezh":            44.4,
	"yamalo_nenets":       48.9,
	"yaroslavl":           43.4,
	"zabaykalsky":         34.9,
}

// BaseRate is the constant multiplier the employment model starts from
const BaseRate = 1.2

// UnknownRegionWeight is the employment weight for regions missing from
// RegionWeights. Deliberately below neutral: an unrecognized region is
// treated as a 20% penalty, unlike every other field which defaults to 1.0.
const UnknownRegionWeight = 0.8

// GenderWeights by reported gender
var GenderWeights = map[string]float64{
	"male":   1.15,
	"female": 0.95,
}

// SettlementWeights by settlement type
var SettlementWeights = map[string]float64{
	"city":    1.2,
	"town":    1.0,
	"village": 0.75,
}

// RegionWeights covers the regions with enough labor-market data; the rest
// fall back to UnknownRegionWeight
var RegionWeights = map[string]float64{
	"moscow":           1.35,
	"moscow_oblast":    1.25,
	"saint_petersburg": 1.3,
	"leningrad_oblast": 1.15,
	"tatarstan":        1.2,
	"novosibirsk":      1.15,
	"sverdlovsk":       1.15,
	"krasnodar":        1.1,
	"tyumen":           1.2,
	"khanty_mansi":     1.25,
	"yamalo_nenets":    1.25,
	"nizhny_novgorod":  1.1,
	"samara":           1.1,
	"chelyabinsk":      1.05,
	"rostov":           1.05,
	"voronezh":         1.05,
	"krasnoyarsk":      1.05,
	"perm":             1.05,
	"kaliningrad":      1.1,
	"tomsk":            1.1,
}

// FamilySizeWeights by household size
var FamilySizeWeights = map[string]float64{
	"1":      1.05,
	"2":      1.1,
	"3":      1.0,
	"4":      0.9,
	"5_plus": 0.8,
}

// AgeWeights by age band
var AgeWeights = map[string]float64{
	"16_17":   0.6,
	"18_24":   0.9,
	"25_29":   1.25,
	"30_34":   1.2,
	"35_39":   1.1,
	"40_44":   1.0,
	"45_49":   0.9,
	"50_plus": 0.7,
}

// EducationWeights by highest attained education
var EducationWeights = map[string]float64{
	"secondary":         0.8,
	"vocational":        0.95,
	"incomplete_higher": 1.0,
	"bachelor":          1.15,
	"master":            1.25,
	"phd":               1.3,
}

// ProfessionalSkillWeights by self-reported professional skill tag
var ProfessionalSkillWeights = map[string]float64{
	"programming":        1.4,
	"data_analysis":      1.35,
	"engineering":        1.3,
	"project_management": 1.25,
	"design":             1.2,
	"marketing":          1.15,
	"foreign_languages":  1.15,
	"sales":              1.1,
	"accounting":         1.05,
	"copywriting":        1.05,
	"driving":            1.05,
	"teaching":           1.0,
}
