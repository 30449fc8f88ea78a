package reference

// Committees are the standing and select committees of the House.
var Committees = []string{
	"Appointments Committee",
	"Business Committee",
	"Finance Committee",
	"Public Accounts Committee",
	"Health Committee",
	"Education Committee",
	"Defence and Interior Committee",
	"Foreign Affairs Committee",
	"Constitutional, Legal and Parliamentary Affairs Committee",
	"Local Government and Rural Development Committee",
	"Roads and Transport Committee",
	"Mines and Energy Committee",
	"Food, Agriculture and Cocoa Affairs Committee",
	"Communications Committee",
	"Lands and Natural Resources Committee",
	"Trade, Industry and Tourism Committee",
	"Gender, Children and Social Protection Committee",
	"Youth, Sports and Culture Committee",
	"Employment, Social Welfare and State Enterprises Committee",
	"Works and Housing Committee",
	"Environment, Science and Technology Committee",
	"Privileges Committee",
}

// Role titles. RoleMember is the default.
const (
	RoleSpeaker        = "Speaker"
	RoleDeputySpeaker  = "Deputy Speaker"
	RoleMajorityLeader = "Majority Leader"
	RoleMinorityLeader = "Minority Leader"
	RoleMajorityWhip   = "Majority Chief Whip"
	RoleMinorityWhip   = "Minority Chief Whip"
	RoleCommitteeChair = "Committee Chair"
	RoleRankingMember  = "Ranking Member"
	RoleMember         = "Member"
)

// Roles lists every role in order of precedence.
var Roles = []string{
	RoleSpeaker,
	RoleDeputySpeaker,
	RoleMajorityLeader,
	RoleMinorityLeader,
	RoleMajorityWhip,
	RoleMinorityWhip,
	RoleCommitteeChair,
	RoleRankingMember,
	RoleMember,
}
