package tilemap

// The classic 28x31 maze. '#' is a wall, everything else is open corridor.
// Dots and power pellets are not part of the layout; ResetPellets derives
// them from reachability (see pellets.go).
var defaultMaze = []string{
	"############################",
	"#            ##            #",
	"# #### ##### ## ##### #### #",
	"# #  # #   # ## #   # #  # #",
	"# #### ##### ## ##### #### #",
	"#                          #",
	"# #### ## ######## ## #### #",
	"# #### ## ######## ## #### #",
	"#      ##    ##    ##      #",
	"###### ##### ## ##### ######",
	"     # ##### ## ##### #     ",
	"     # ##          ## #     ",
	"     # ## ###  ### ## #     ",
	"###### ## ###  ### ## ######",
	"          #      #          ",
	"###### ## ######## ## ######",
	"     # ## ######## ## #     ",
	"     # ##          ## #     ",
	"     # ## ######## ## #     ",
	"###### ## ######## ## ######",
	"#            ##            #",
	"# #### ##### ## ##### #### #",
	"# #### ##### ## ##### #### #",
	"#   ##                ##   #",
	"### ## ## ######## ## ## ###",
	"### ## ## ######## ## ## ###",
	"#      ##    ##    ##      #",
	"# ########## ## ########## #",
	"# ########## ## ########## #",
	"#                          #",
	"############################",
}

// powerPellets holds the four fixed power pellet tiles.
var powerPellets = [][2]int{{1, 3}, {26, 3}, {1, 23}, {26, 23}}
