package auth

// Module identifiers, shared between the navigation registry, employee
// accessibleModules lists and the route gate.
const (
	ModuleDashboard   = "dashboard"
	ModuleProfile     = "profile"
	ModuleEmployees   = "employees"
	ModuleRecruitment = "recruitment"
	ModulePerformance = "performance"
	ModuleAttendance  = "attendance"
	ModuleReporting   = "reporting"
	ModuleAssistant   = "assistant"
)

type Module struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Roles []Role `json:"roles"`
}

// Modules is the navigation registry. Order is the display order.
func Modules() []Module {
	return []Module{
		{ID: ModuleDashboard, Label: "Dashboard", Roles: []Role{RoleAdmin, RoleEmployee}},
		{ID: ModuleProfile, Label: "Profile", Roles: []Role{RoleAdmin, RoleEmployee}},
		{ID: ModuleEmployees, Label: "Employees", Roles: []Role{RoleAdmin}},
		{ID: ModuleRecruitment, Label: "Recruitment", Roles: []Role{RoleAdmin}},
		{ID: ModulePerformance, Label: "Performance", Roles: []Role{RoleAdmin}},
		{ID: ModuleAttendance, Label: "Attendance", Roles: []Role{RoleAdmin, RoleEmployee}},
		{ID: ModuleReporting, Label: "Reporting", Roles: []Role{RoleAdmin}},
		{ID: ModuleAssistant, Label: "AI Assistant", Roles: []Role{RoleAdmin, RoleEmployee}},
	}
}

func (m Module) allowsRole(role Role) bool {
	for _, r := range m.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CanAccess applies the navigation gate: the module must permit the role,
// and an Employee additionally needs the module on their allow-list. Admins
// bypass the allow-list. This is advisory UI gating, not a security boundary.
func CanAccess(role Role, accessible []string, moduleID string) bool {
	for _, m := range Modules() {
		if m.ID != moduleID {
			continue
		}
		if !m.allowsRole(role) {
			return false
		}
		if role == RoleAdmin {
			return true
		}
		for _, id := range accessible {
			if id == moduleID {
				return true
			}
		}
		return false
	}
	return false
}

// VisibleModules projects the registry down to what one user may navigate to.
func VisibleModules(role Role, accessible []string) []Module {
	visible := make([]Module, 0)
	for _, m := range Modules() {
		if CanAccess(role, accessible, m.ID) {
			visible = append(visible, m)
		}
	}
	return visible
}
