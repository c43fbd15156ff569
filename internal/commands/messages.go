package commands

const (
	msgUnknownCommand = `Unknown command: {{ .Name }}`
	msgNoPermission   = `No permission! You cannot use {{ .Name }}.`
	msgNotOnline      = `'{{ .Name }}' not found or offline!`
	msgInvalidCoords  = `Invalid coordinates!`

	msgDisplayUsage    = "Display usage: display <type> [on|off]\nTypes: {{ join \", \" .Types }}"
	msgDisplayDisabled = `'{{ .Type }}' is disabled by server admins!`
	msgDisplayOn       = `{{ .Type }} display ENABLED!`
	msgDisplayOff      = `{{ .Type }} display DISABLED!`

	msgShare     = `[{{ .Name }}] is at {{ .Coords }} in {{ .World }}`
	msgShareSent = `Coordinates sent to {{ .Name }}!`

	msgWaypointUsage    = `Waypoint usage: waypoint <set|remove|list|view>`
	msgWaypointSetUsage = `Set waypoint usage: waypoint set <name> [x y z]`
	msgWaypointRmUsage  = `Remove waypoint usage: waypoint remove <name>`
	msgWaypointSet      = `Waypoint '{{ .Name }}' set at {{ .Coords }}!`
	msgWaypointRemoved  = `Waypoint '{{ .Name }}' removed!`
	msgWaypointNotFound = `Waypoint '{{ .Name }}' not found!`
	msgActiveCleared    = `Active waypoint cleared!`
	msgNoWaypoints      = `You have no waypoints!`
	msgViewCleared      = `Waypoint view cleared!`
	msgViewing          = `Now viewing waypoint '{{ .Name }}'!`
	msgWaypointList     = `{{ .Title }}{{ range .Waypoints }}
- {{ .Name }}{{ if .Active }} (active){{ end }}: {{ .Coords }}{{ end }}`

	msgAdminUsage           = `Admin usage: admin <waypoint|display> <player> ...`
	msgAdminWaypointUsage   = `Admin waypoint usage: admin waypoint <player> <set|remove|list|view|tp> [args]`
	msgAdminDisplayUsage    = `Admin display usage: admin display <player> <enable|disable> <type>`
	msgAdminDisplayDisabled = `Display type '{{ .Type }}' is disabled!`
	msgAdminDisplayOn       = `Enabled {{ .Type }} for {{ .Target }}!`
	msgAdminDisplayOff      = `Disabled {{ .Type }} for {{ .Target }}!`
	msgTargetDisplayOn      = `Admin enabled your {{ .Type }} display!`
	msgTargetDisplayOff     = `Admin disabled your {{ .Type }} display!`
	msgAdminWaypointSet     = `Set waypoint '{{ .Name }}' for {{ .Target }} at {{ .Coords }}!`
	msgTargetWaypointSet    = `Admin set your waypoint '{{ .Name }}'!`
	msgAdminWaypointRemoved = `Removed waypoint '{{ .Name }}' for {{ .Target }}!`
	msgAdminNotFound        = `Waypoint '{{ .Name }}' not found for {{ .Target }}!`
	msgAdminNoWaypoints     = `{{ .Target }} has no waypoints!`
	msgAdminViewCleared     = `Cleared active waypoint view for {{ .Target }}!`
	msgTargetViewCleared    = `Admin stopped your view of waypoint '{{ .Name }}'!`
	msgAdminViewing         = `Set {{ .Target }} to view waypoint '{{ .Name }}'!`
	msgTargetViewing        = `Admin set you to view waypoint '{{ .Name }}'!`
	msgAdminTeleported      = `Teleported to {{ .Target }}'s waypoint '{{ .Name }}'!`

	msgGotoUsage = `Goto usage: goto <x> <y> <z> [world]`
	msgFaceUsage = `Face usage: face <yaw>`
	msgMoved     = `You are now at {{ .Coords }} in {{ .World }}.`
	msgFacing    = `You are now facing {{ .Heading }}.`
	msgNoWorld   = `There is no world called '{{ .Name }}'. Worlds: {{ join ", " .Worlds }}`

	msgWho = `Players Online:{{ range .Players }}
{{ if .Admin }}[admin] {{ end }}{{ .Name }} ({{ .World }}){{ end }}`
)
