// Package dict holds the canonical lookup tables used by normalization and
// classification: site synonyms, device-category keywords, and team keywords.
//
// All tables are ordered lists, not maps. Inference everywhere in rake is
// "first match wins", so iteration order is part of the contract and must be
// deterministic. Dictionaries are constructed once, passed into the engine,
// and never mutated during a run; unsynchronized concurrent reads are safe.
package dict

// Entry associates a canonical code with the keywords (or synonyms) that
// resolve to it. Keywords are matched case-insensitively by substring.
type Entry struct {
	Code     string   `yaml:"code"`
	Keywords []string `yaml:"keywords"`
}

// Dictionaries bundles the three lookup tables consumed by the engine.
type Dictionaries struct {
	Sites   []Entry `yaml:"sites"`
	Devices []Entry `yaml:"devices"`
	Teams   []Entry `yaml:"teams"`
}

// Default returns the built-in tables. Codes in Sites are 3-letter IATA-style
// site codes; codes in Devices are device-type labels; codes in Teams are
// short team tags.
func Default() Dictionaries {
	return Dictionaries{
		Sites: []Entry{
			{Code: "SJC", Keywords: []string{"sjc", "san jose", "sj"}},
			{Code: "SFO", Keywords: []string{"sfo", "san francisco", "sf"}},
			{Code: "NYC", Keywords: []string{"nyc", "new york", "ny"}},
			{Code: "LON", Keywords: []string{"lon", "london", "ldn"}},
			{Code: "AMS", Keywords: []string{"ams", "amsterdam"}},
			{Code: "FRA", Keywords: []string{"fra", "frankfurt"}},
			{Code: "TYO", Keywords: []string{"tyo", "tokyo"}},
			{Code: "BLR", Keywords: []string{"blr", "bengaluru", "bangalore"}},
			{Code: "PEK", Keywords: []string{"pek", "beijing"}},
		},
		Devices: []Entry{
			{Code: "switch", Keywords: []string{"switch", "sw", "dist", "edge", "core"}},
			{Code: "router", Keywords: []string{"router", "rtr", "gw", "gateway"}},
			{Code: "firewall", Keywords: []string{"firewall", "fw", "asa", "palo", "pa-"}},
			{Code: "wireless_ap", Keywords: []string{"ap", "wlc", "aironet", "arubaap"}},
			{Code: "printer", Keywords: []string{"printer", "prt", "prn", "hp-lj"}},
			{Code: "server", Keywords: []string{"server", "srv", "db", "sql", "web", "app", "kube", "k8s", "esx", "esxi"}},
			{Code: "desktop", Keywords: []string{"desktop", "dt"}},
			{Code: "laptop", Keywords: []string{"laptop", "lt", "mbp", "macbook", "thinkpad", "elitebook"}},
			{Code: "load_balancer", Keywords: []string{"f5", "ltm", "bigip", "netscaler", "avi-lb"}},
			{Code: "nas", Keywords: []string{"nas", "synology", "qnap", "isilon"}},
			{Code: "camera", Keywords: []string{"cam", "camera", "cctv"}},
			{Code: "phone", Keywords: []string{"phone", "voip", "sip"}},
			{Code: "iot", Keywords: []string{"sensor", "badge", "door", "lock", "iot"}},
		},
		Teams: []Entry{
			{Code: "netops", Keywords: []string{"netops", "network", "noc"}},
			{Code: "secops", Keywords: []string{"secops", "security", "soc"}},
			{Code: "devops", Keywords: []string{"devops", "platform", "sre"}},
			{Code: "it", Keywords: []string{"it", "helpdesk", "desktop"}},
			{Code: "eng", Keywords: []string{"engineering", "dev", "qa", "test"}},
			{Code: "sales", Keywords: []string{"sales", "field", "se"}},
			{Code: "hr", Keywords: []string{"hr", "talent", "recruiting"}},
			{Code: "finance", Keywords: []string{"finance", "acct", "accounting"}},
			{Code: "marketing", Keywords: []string{"marketing", "mktg"}},
			{Code: "ops", Keywords: []string{"ops", "operations"}},
		},
	}
}
