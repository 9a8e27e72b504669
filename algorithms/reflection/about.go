package reflection

// About explains what reflecting over an axis means
const About = `This program inverts musical notes within a key center, i.e. over an axis.
The point is to discover interesting chords and/or chord progressions.

For example, if the key center is C, the axis is dead between C and G, which
means it is actually between Eb and E. Notes are then reflected over this axis.
When the axis is C/G, C becomes G, Db becomes Gb, and so on. You could think of
it as flipping numbers in a number line over zero: -5 becomes 5 etc.

Another way to visualize the process is laying the axis on the circle of fifths.
The circle of fifths organizes the 12 chromatic pitches as a sequence of perfect
fifths. Notes sitting opposite each other across the axis become each other when
reflected, and the axis turns by one step for every half-step the key center moves.`
