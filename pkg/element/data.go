package element

// periodicTable lists elements 1 (H) through 111 (Rg). Masses of radioactive
// elements without a standard atomic weight are the mass number of the
// longest-lived isotope.
//
// Cn, Uut, Fl, Uup, Lv, Uus and Uuo are not listed; formulas naming them
// fail with UnknownSymbolError.
var periodicTable = []Element{
	{Symbol: "H", Name: "Hydrogen", Number: 1, Period: 1, Group: 1, AtomicMass: 1.00794, Class: ClassNonmetal},
	{Symbol: "He", Name: "Helium", Number: 2, Period: 1, Group: 18, AtomicMass: 4.002602, Class: ClassNobleGas},
	{Symbol: "Li", Name: "Lithium", Number: 3, Period: 2, Group: 1, AtomicMass: 6.941, Class: ClassAlkaliMetal},
	{Symbol: "Be", Name: "Beryllium", Number: 4, Period: 2, Group: 2, AtomicMass: 9.012182, Class: ClassAlkalineEarthMetal},
	{Symbol: "B", Name: "Boron", Number: 5, Period: 2, Group: 13, AtomicMass: 10.811, Class: ClassMetalloid},
	{Symbol: "C", Name: "Carbon", Number: 6, Period: 2, Group: 14, AtomicMass: 12.0107, Class: ClassNonmetal},
	{Symbol: "N", Name: "Nitrogen", Number: 7, Period: 2, Group: 15, AtomicMass: 14.0067, Class: ClassNonmetal},
	{Symbol: "O", Name: "Oxygen", Number: 8, Period: 2, Group: 16, AtomicMass: 15.9994, Class: ClassNonmetal},
	{Symbol: "F", Name: "Fluorine", Number: 9, Period: 2, Group: 17, AtomicMass: 18.9984032, Class: ClassHalogen},
	{Symbol: "Ne", Name: "Neon", Number: 10, Period: 2, Group: 18, AtomicMass: 20.1797, Class: ClassNobleGas},
	{Symbol: "Na", Name: "Sodium", Number: 11, Period: 3, Group: 1, AtomicMass: 22.98976928, Class: ClassAlkaliMetal},
	{Symbol: "Mg", Name: "Magnesium", Number: 12, Period: 3, Group: 2, AtomicMass: 24.305, Class: ClassAlkalineEarthMetal},
	{Symbol: "Al", Name: "Aluminium", Number: 13, Period: 3, Group: 13, AtomicMass: 26.9815386, Class: ClassPostTransitionMetal},
	{Symbol: "Si", Name: "Silicon", Number: 14, Period: 3, Group: 14, AtomicMass: 28.0855, Class: ClassMetalloid},
	{Symbol: "P", Name: "Phosphorus", Number: 15, Period: 3, Group: 15, AtomicMass: 30.973762, Class: ClassNonmetal},
	{Symbol: "S", Name: "Sulfur", Number: 16, Period: 3, Group: 16, AtomicMass: 32.065, Class: ClassNonmetal},
	{Symbol: "Cl", Name: "Chlorine", Number: 17, Period: 3, Group: 17, AtomicMass: 35.453, Class: ClassHalogen},
	{Symbol: "Ar", Name: "Argon", Number: 18, Period: 3, Group: 18, AtomicMass: 39.948, Class: ClassNobleGas},
	{Symbol: "K", Name: "Potassium", Number: 19, Period: 4, Group: 1, AtomicMass: 39.0983, Class: ClassAlkaliMetal},
	{Symbol: "Ca", Name: "Calcium", Number: 20, Period: 4, Group: 2, AtomicMass: 40.078, Class: ClassAlkalineEarthMetal},
	{Symbol: "Sc", Name: "Scandium", Number: 21, Period: 4, Group: 3, AtomicMass: 44.955912, Class: ClassTransitionMetal},
	{Symbol: "Ti", Name: "Titanium", Number: 22, Period: 4, Group: 4, AtomicMass: 47.867, Class: ClassTransitionMetal},
	{Symbol: "V", Name: "Vanadium", Number: 23, Period: 4, Group: 5, AtomicMass: 50.9415, Class: ClassTransitionMetal},
	{Symbol: "Cr", Name: "Chromium", Number: 24, Period: 4, Group: 6, AtomicMass: 51.9961, Class: ClassTransitionMetal},
	{Symbol: "Mn", Name: "Manganese", Number: 25, Period: 4, Group: 7, AtomicMass: 54.938045, Class: ClassTransitionMetal},
	{Symbol: "Fe", Name: "Iron", Number: 26, Period: 4, Group: 8, AtomicMass: 55.845, Class: ClassTransitionMetal},
	{Symbol: "Co", Name: "Cobalt", Number: 27, Period: 4, Group: 9, AtomicMass: 58.933195, Class: ClassTransitionMetal},
	{Symbol: "Ni", Name: "Nickel", Number: 28, Period: 4, Group: 10, AtomicMass: 58.6934, Class: ClassTransitionMetal},
	{Symbol: "Cu", Name: "Copper", Number: 29, Period: 4, Group: 11, AtomicMass: 63.546, Class: ClassTransitionMetal},
	{Symbol: "Zn", Name: "Zinc", Number: 30, Period: 4, Group: 12, AtomicMass: 65.38, Class: ClassTransitionMetal},
	{Symbol: "Ga", Name: "Gallium", Number: 31, Period: 4, Group: 13, AtomicMass: 69.723, Class: ClassPostTransitionMetal},
	{Symbol: "Ge", Name: "Germanium", Number: 32, Period: 4, Group: 14, AtomicMass: 72.64, Class: ClassMetalloid},
	{Symbol: "As", Name: "Arsenic", Number: 33, Period: 4, Group: 15, AtomicMass: 74.9216, Class: ClassMetalloid},
	{Symbol: "Se", Name: "Selenium", Number: 34, Period: 4, Group: 16, AtomicMass: 78.96, Class: ClassNonmetal},
	{Symbol: "Br", Name: "Bromine", Number: 35, Period: 4, Group: 17, AtomicMass: 79.904, Class: ClassHalogen},
	{Symbol: "Kr", Name: "Krypton", Number: 36, Period: 4, Group: 18, AtomicMass: 83.798, Class: ClassNobleGas},
	{Symbol: "Rb", Name: "Rubidium", Number: 37, Period: 5, Group: 1, AtomicMass: 85.4678, Class: ClassAlkaliMetal},
	{Symbol: "Sr", Name: "Strontium", Number: 38, Period: 5, Group: 2, AtomicMass: 87.62, Class: ClassAlkalineEarthMetal},
	{Symbol: "Y", Name: "Yttrium", Number: 39, Period: 5, Group: 3, AtomicMass: 88.90585, Class: ClassTransitionMetal},
	{Symbol: "Zr", Name: "Zirconium", Number: 40, Period: 5, Group: 4, AtomicMass: 91.224, Class: ClassTransitionMetal},
	{Symbol: "Nb", Name: "Niobium", Number: 41, Period: 5, Group: 5, AtomicMass: 92.90638, Class: ClassTransitionMetal},
	{Symbol: "Mo", Name: "Molybdenum", Number: 42, Period: 5, Group: 6, AtomicMass: 95.96, Class: ClassTransitionMetal},
	{Symbol: "Tc", Name: "Technetium", Number: 43, Period: 5, Group: 7, AtomicMass: 98, Class: ClassTransitionMetal},
	{Symbol: "Ru", Name: "Ruthenium", Number: 44, Period: 5, Group: 8, AtomicMass: 101.07, Class: ClassTransitionMetal},
	{Symbol: "Rh", Name: "Rhodium", Number: 45, Period: 5, Group: 9, AtomicMass: 102.9055, Class: ClassTransitionMetal},
	{Symbol: "Pd", Name: "Palladium", Number: 46, Period: 5, Group: 10, AtomicMass: 106.42, Class: ClassTransitionMetal},
	{Symbol: "Ag", Name: "Silver", Number: 47, Period: 5, Group: 11, AtomicMass: 107.8682, Class: ClassTransitionMetal},
	{Symbol: "Cd", Name: "Cadmium", Number: 48, Period: 5, Group: 12, AtomicMass: 112.411, Class: ClassTransitionMetal},
	{Symbol: "In", Name: "Indium", Number: 49, Period: 5, Group: 13, AtomicMass: 114.818, Class: ClassPostTransitionMetal},
	{Symbol: "Sn", Name: "Tin", Number: 50, Period: 5, Group: 14, AtomicMass: 118.71, Class: ClassPostTransitionMetal},
	{Symbol: "Sb", Name: "Antimony", Number: 51, Period: 5, Group: 15, AtomicMass: 121.76, Class: ClassMetalloid},
	{Symbol: "Te", Name: "Tellurium", Number: 52, Period: 5, Group: 16, AtomicMass: 127.6, Class: ClassMetalloid},
	{Symbol: "I", Name: "Iodine", Number: 53, Period: 5, Group: 17, AtomicMass: 126.90447, Class: ClassHalogen},
	{Symbol: "Xe", Name: "Xenon", Number: 54, Period: 5, Group: 18, AtomicMass: 131.293, Class: ClassNobleGas},
	{Symbol: "Cs", Name: "Caesium", Number: 55, Period: 6, Group: 1, AtomicMass: 132.9054519, Class: ClassAlkaliMetal},
	{Symbol: "Ba", Name: "Barium", Number: 56, Period: 6, Group: 2, AtomicMass: 137.327, Class: ClassAlkalineEarthMetal},
	{Symbol: "La", Name: "Lanthanum", Number: 57, Period: 6, Group: 0, AtomicMass: 138.90547, Class: ClassLanthanide},
	{Symbol: "Ce", Name: "Cerium", Number: 58, Period: 6, Group: 0, AtomicMass: 140.116, Class: ClassLanthanide},
	{Symbol: "Pr", Name: "Praseodymium", Number: 59, Period: 6, Group: 0, AtomicMass: 140.90765, Class: ClassLanthanide},
	{Symbol: "Nd", Name: "Neodymium", Number: 60, Period: 6, Group: 0, AtomicMass: 144.242, Class: ClassLanthanide},
	{Symbol: "Pm", Name: "Promethium", Number: 61, Period: 6, Group: 0, AtomicMass: 145, Class: ClassLanthanide},
	{Symbol: "Sm", Name: "Samarium", Number: 62, Period: 6, Group: 0, AtomicMass: 150.36, Class: ClassLanthanide},
	{Symbol: "Eu", Name: "Europium", Number: 63, Period: 6, Group: 0, AtomicMass: 151.964, Class: ClassLanthanide},
	{Symbol: "Gd", Name: "Gadolinium", Number: 64, Period: 6, Group: 0, AtomicMass: 157.25, Class: ClassLanthanide},
	{Symbol: "Tb", Name: "Terbium", Number: 65, Period: 6, Group: 0, AtomicMass: 158.92535, Class: ClassLanthanide},
	{Symbol: "Dy", Name: "Dysprosium", Number: 66, Period: 6, Group: 0, AtomicMass: 162.5, Class: ClassLanthanide},
	{Symbol: "Ho", Name: "Holmium", Number: 67, Period: 6, Group: 0, AtomicMass: 164.93032, Class: ClassLanthanide},
	{Symbol: "Er", Name: "Erbium", Number: 68, Period: 6, Group: 0, AtomicMass: 167.259, Class: ClassLanthanide},
	{Symbol: "Tm", Name: "Thulium", Number: 69, Period: 6, Group: 0, AtomicMass: 168.93421, Class: ClassLanthanide},
	{Symbol: "Yb", Name: "Ytterbium", Number: 70, Period: 6, Group: 0, AtomicMass: 173.054, Class: ClassLanthanide},
	{Symbol: "Lu", Name: "Lutetium", Number: 71, Period: 6, Group: 3, AtomicMass: 174.9668, Class: ClassLanthanide},
	{Symbol: "Hf", Name: "Hafnium", Number: 72, Period: 6, Group: 4, AtomicMass: 178.49, Class: ClassTransitionMetal},
	{Symbol: "Ta", Name: "Tantalum", Number: 73, Period: 6, Group: 5, AtomicMass: 180.94788, Class: ClassTransitionMetal},
	{Symbol: "W", Name: "Tungsten", Number: 74, Period: 6, Group: 6, AtomicMass: 183.84, Class: ClassTransitionMetal},
	{Symbol: "Re", Name: "Rhenium", Number: 75, Period: 6, Group: 7, AtomicMass: 186.207, Class: ClassTransitionMetal},
	{Symbol: "Os", Name: "Osmium", Number: 76, Period: 6, Group: 8, AtomicMass: 190.23, Class: ClassTransitionMetal},
	{Symbol: "Ir", Name: "Iridium", Number: 77, Period: 6, Group: 9, AtomicMass: 192.217, Class: ClassTransitionMetal},
	{Symbol: "Pt", Name: "Platinum", Number: 78, Period: 6, Group: 10, AtomicMass: 195.084, Class: ClassTransitionMetal},
	{Symbol: "Au", Name: "Gold", Number: 79, Period: 6, Group: 11, AtomicMass: 196.966569, Class: ClassTransitionMetal},
	{Symbol: "Hg", Name: "Mercury", Number: 80, Period: 6, Group: 12, AtomicMass: 200.59, Class: ClassTransitionMetal},
	{Symbol: "Tl", Name: "Thallium", Number: 81, Period: 6, Group: 13, AtomicMass: 204.3833, Class: ClassPostTransitionMetal},
	{Symbol: "Pb", Name: "Lead", Number: 82, Period: 6, Group: 14, AtomicMass: 207.2, Class: ClassPostTransitionMetal},
	{Symbol: "Bi", Name: "Bismuth", Number: 83, Period: 6, Group: 15, AtomicMass: 208.9804, Class: ClassPostTransitionMetal},
	{Symbol: "Po", Name: "Polonium", Number: 84, Period: 6, Group: 16, AtomicMass: 209, Class: ClassPostTransitionMetal},
	{Symbol: "At", Name: "Astatine", Number: 85, Period: 6, Group: 17, AtomicMass: 210, Class: ClassHalogen},
	{Symbol: "Rn", Name: "Radon", Number: 86, Period: 6, Group: 18, AtomicMass: 222, Class: ClassNobleGas},
	{Symbol: "Fr", Name: "Francium", Number: 87, Period: 7, Group: 1, AtomicMass: 223, Class: ClassAlkaliMetal},
	{Symbol: "Ra", Name: "Radium", Number: 88, Period: 7, Group: 2, AtomicMass: 226, Class: ClassAlkalineEarthMetal},
	{Symbol: "Ac", Name: "Actinium", Number: 89, Period: 7, Group: 0, AtomicMass: 227, Class: ClassActinide},
	{Symbol: "Th", Name: "Thorium", Number: 90, Period: 7, Group: 0, AtomicMass: 232.03806, Class: ClassActinide},
	{Symbol: "Pa", Name: "Protactinium", Number: 91, Period: 7, Group: 0, AtomicMass: 231.03588, Class: ClassActinide},
	{Symbol: "U", Name: "Uranium", Number: 92, Period: 7, Group: 0, AtomicMass: 238.02891, Class: ClassActinide},
	{Symbol: "Np", Name: "Neptunium", Number: 93, Period: 7, Group: 0, AtomicMass: 237, Class: ClassActinide},
	{Symbol: "Pu", Name: "Plutonium", Number: 94, Period: 7, Group: 0, AtomicMass: 244, Class: ClassActinide},
	{Symbol: "Am", Name: "Americium", Number: 95, Period: 7, Group: 0, AtomicMass: 243, Class: ClassActinide},
	{Symbol: "Cm", Name: "Curium", Number: 96, Period: 7, Group: 0, AtomicMass: 247, Class: ClassActinide},
	{Symbol: "Bk", Name: "Berkelium", Number: 97, Period: 7, Group: 0, AtomicMass: 247, Class: ClassActinide},
	{Symbol: "Cf", Name: "Californium", Number: 98, Period: 7, Group: 0, AtomicMass: 251, Class: ClassActinide},
	{Symbol: "Es", Name: "Einsteinium", Number: 99, Period: 7, Group: 0, AtomicMass: 252, Class: ClassActinide},
	{Symbol: "Fm", Name: "Fermium", Number: 100, Period: 7, Group: 0, AtomicMass: 257, Class: ClassActinide},
	{Symbol: "Md", Name: "Mendelevium", Number: 101, Period: 7, Group: 0, AtomicMass: 258, Class: ClassActinide},
	{Symbol: "No", Name: "Nobelium", Number: 102, Period: 7, Group: 0, AtomicMass: 259, Class: ClassActinide},
	{Symbol: "Lr", Name: "Lawrencium", Number: 103, Period: 7, Group: 3, AtomicMass: 262, Class: ClassActinide},
	{Symbol: "Rf", Name: "Rutherfordium", Number: 104, Period: 7, Group: 4, AtomicMass: 267, Class: ClassTransitionMetal},
	{Symbol: "Db", Name: "Dubnium", Number: 105, Period: 7, Group: 5, AtomicMass: 268, Class: ClassTransitionMetal},
	{Symbol: "Sg", Name: "Seaborgium", Number: 106, Period: 7, Group: 6, AtomicMass: 271, Class: ClassTransitionMetal},
	{Symbol: "Bh", Name: "Bohrium", Number: 107, Period: 7, Group: 7, AtomicMass: 272, Class: ClassTransitionMetal},
	{Symbol: "Hs", Name: "Hassium", Number: 108, Period: 7, Group: 8, AtomicMass: 270, Class: ClassTransitionMetal},
	{Symbol: "Mt", Name: "Meitnerium", Number: 109, Period: 7, Group: 9, AtomicMass: 276, Class: ClassTransitionMetal},
	{Symbol: "Ds", Name: "Darmstadtium", Number: 110, Period: 7, Group: 10, AtomicMass: 281, Class: ClassTransitionMetal},
	{Symbol: "Rg", Name: "Roentgenium", Number: 111, Period: 7, Group: 11, AtomicMass: 280, Class: ClassTransitionMetal},
}
