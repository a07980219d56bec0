package ushape

// Joining types of the letters of the Arabic blocks (U+0600..U+06FF,
// U+0750..U+077F, U+0870..U+08FF), from ArabicShaping.txt. Characters not
// listed are non-joining, or transparent if they are nonspacing marks.
var letterJoining = map[uint16]joiningType{
	0x0600: jtU, 0x0601: jtU, 0x0602: jtU, 0x0603: jtU,
	0x0604: jtU, 0x0605: jtU, 0x0608: jtU, 0x060B: jtU,
	0x0620: jtD, 0x0621: jtU, 0x0622: jtR, 0x0623: jtR,
	0x0624: jtR, 0x0625: jtR, 0x0626: jtD, 0x0627: jtR,
	0x0628: jtD, 0x0629: jtR, 0x062A: jtD, 0x062B: jtD,
	0x062C: jtD, 0x062D: jtD, 0x062E: jtD, 0x062F: jtR,
	0x0630: jtR, 0x0631: jtR, 0x0632: jtR, 0x0633: jtD,
	0x0634: jtD, 0x0635: jtD, 0x0636: jtD, 0x0637: jtD,
	0x0638: jtD, 0x0639: jtD, 0x063A: jtD, 0x063B: jtD,
	0x063C: jtD, 0x063D: jtD, 0x063E: jtD, 0x063F: jtD,
	0x0640: jtC, 0x0641: jtD, 0x0642: jtD, 0x0643: jtD,
	0x0644: jtD, 0x0645: jtD, 0x0646: jtD, 0x0647: jtD,
	0x0648: jtR, 0x0649: jtD, 0x064A: jtD, 0x066E: jtD,
	0x066F: jtD, 0x0671: jtR, 0x0672: jtR, 0x0673: jtR,
	0x0674: jtU, 0x0675: jtR, 0x0676: jtR, 0x0677: jtR,
	0x0678: jtD, 0x0679: jtD, 0x067A: jtD, 0x067B: jtD,
	0x067C: jtD, 0x067D: jtD, 0x067E: jtD, 0x067F: jtD,
	0x0680: jtD, 0x0681: jtD, 0x0682: jtD, 0x0683: jtD,
	0x0684: jtD, 0x0685: jtD, 0x0686: jtD, 0x0687: jtD,
	0x0688: jtR, 0x0689: jtR, 0x068A: jtR, 0x068B: jtR,
	0x068C: jtR, 0x068D: jtR, 0x068E: jtR, 0x068F: jtR,
	0x0690: jtR, 0x0691: jtR, 0x0692: jtR, 0x0693: jtR,
	0x0694: jtR, 0x0695: jtR, 0x0696: jtR, 0x0697: jtR,
	0x0698: jtR, 0x0699: jtR, 0x069A: jtD, 0x069B: jtD,
	0x069C: jtD, 0x069D: jtD, 0x069E: jtD, 0x069F: jtD,
	0x06A0: jtD, 0x06A1: jtD, 0x06A2: jtD, 0x06A3: jtD,
	0x06A4: jtD, 0x06A5: jtD, 0x06A6: jtD, 0x06A7: jtD,
	0x06A8: jtD, 0x06A9: jtD, 0x06AA: jtD, 0x06AB: jtD,
	0x06AC: jtD, 0x06AD: jtD, 0x06AE: jtD, 0x06AF: jtD,
	0x06B0: jtD, 0x06B1: jtD, 0x06B2: jtD, 0x06B3: jtD,
	0x06B4: jtD, 0x06B5: jtD, 0x06B6: jtD, 0x06B7: jtD,
	0x06B8: jtD, 0x06B9: jtD, 0x06BA: jtD, 0x06BB: jtD,
	0x06BC: jtD, 0x06BD: jtD, 0x06BE: jtD, 0x06BF: jtD,
	0x06C0: jtR, 0x06C1: jtD, 0x06C2: jtD, 0x06C3: jtR,
	0x06C4: jtR, 0x06C5: jtR, 0x06C6: jtR, 0x06C7: jtR,
	0x06C8: jtR, 0x06C9: jtR, 0x06CA: jtR, 0x06CB: jtR,
	0x06CC: jtD, 0x06CD: jtR, 0x06CE: jtD, 0x06CF: jtR,
	0x06D0: jtD, 0x06D1: jtD, 0x06D2: jtR, 0x06D3: jtR,
	0x06D5: jtR, 0x06DD: jtU, 0x06EE: jtR, 0x06EF: jtR,
	0x06FA: jtD, 0x06FB: jtD, 0x06FC: jtD, 0x06FF: jtD,
	0x0750: jtD, 0x0751: jtD, 0x0752: jtD, 0x0753: jtD,
	0x0754: jtD, 0x0755: jtD, 0x0756: jtD, 0x0757: jtD,
	0x0758: jtD, 0x0759: jtR, 0x075A: jtR, 0x075B: jtR,
	0x075C: jtD, 0x075D: jtD, 0x075E: jtD, 0x075F: jtD,
	0x0760: jtD, 0x0761: jtD, 0x0762: jtD, 0x0763: jtD,
	0x0764: jtD, 0x0765: jtD, 0x0766: jtD, 0x0767: jtD,
	0x0768: jtD, 0x0769: jtD, 0x076A: jtD, 0x076B: jtR,
	0x076C: jtR, 0x076D: jtD, 0x076E: jtD, 0x076F: jtD,
	0x0770: jtD, 0x0771: jtR, 0x0772: jtD, 0x0773: jtR,
	0x0774: jtR, 0x0775: jtD, 0x0776: jtD, 0x0777: jtD,
	0x0778: jtR, 0x0779: jtR, 0x077A: jtD, 0x077B: jtD,
	0x077C: jtD, 0x077D: jtD, 0x077E: jtD, 0x077F: jtD,
	0x0870: jtR, 0x0871: jtR, 0x0872: jtR, 0x0873: jtR,
	0x0874: jtR, 0x0875: jtR, 0x0876: jtR, 0x0877: jtR,
	0x0878: jtR, 0x0879: jtR, 0x087A: jtR, 0x087B: jtR,
	0x087C: jtR, 0x087D: jtR, 0x087E: jtR, 0x087F: jtR,
	0x0880: jtR, 0x0881: jtR, 0x0882: jtR, 0x0883: jtC,
	0x0884: jtC, 0x0885: jtC, 0x0886: jtD, 0x0887: jtU,
	0x0888: jtU, 0x0889: jtD, 0x088A: jtD, 0x088B: jtD,
	0x088C: jtD, 0x088D: jtD, 0x088E: jtR, 0x0890: jtU,
	0x0891: jtU, 0x08A0: jtD, 0x08A1: jtD, 0x08A2: jtD,
	0x08A3: jtD, 0x08A4: jtD, 0x08A5: jtD, 0x08A6: jtD,
	0x08A7: jtD, 0x08A8: jtD, 0x08A9: jtD, 0x08AA: jtR,
	0x08AB: jtR, 0x08AC: jtR, 0x08AD: jtU, 0x08AE: jtR,
	0x08AF: jtD, 0x08B0: jtD, 0x08B1: jtR, 0x08B2: jtR,
	0x08B3: jtD, 0x08B4: jtD, 0x08B5: jtD, 0x08B6: jtD,
	0x08B7: jtD, 0x08B8: jtD, 0x08B9: jtR, 0x08BA: jtD,
	0x08BB: jtD, 0x08BC: jtD, 0x08BD: jtD, 0x08BE: jtD,
	0x08BF: jtD, 0x08C0: jtD, 0x08C1: jtD, 0x08C2: jtD,
	0x08C3: jtD, 0x08C4: jtD, 0x08C5: jtD, 0x08C6: jtD,
	0x08C7: jtD, 0x08C8: jtD, 0x08E2: jtU,
}

// firstShaped and lastShaped bound the letters with presentation forms in
// the Arabic Presentation Forms blocks.
const (
	firstShaped = 0x0621
	lastShaped  = 0x06D3
)

// shapingForms holds the presentation forms of the letters
// firstShaped..lastShaped, in the order isolated, final, initial, medial.
// A zero form is not available.
var shapingForms = [lastShaped - firstShaped + 1][4]uint16{
	{0xFE80, 0x0000, 0x0000, 0x0000}, // U+0621 Hamza
	{0xFE81, 0xFE82, 0x0000, 0x0000}, // U+0622 Alef With Madda Above
	{0xFE83, 0xFE84, 0x0000, 0x0000}, // U+0623 Alef With Hamza Above
	{0xFE85, 0xFE86, 0x0000, 0x0000}, // U+0624 Waw With Hamza Above
	{0xFE87, 0xFE88, 0x0000, 0x0000}, // U+0625 Alef With Hamza Below
	{0xFE89, 0xFE8A, 0xFE8B, 0xFE8C}, // U+0626 Yeh With Hamza Above
	{0xFE8D, 0xFE8E, 0x0000, 0x0000}, // U+0627 Alef
	{0xFE8F, 0xFE90, 0xFE91, 0xFE92}, // U+0628 Beh
	{0xFE93, 0xFE94, 0x0000, 0x0000}, // U+0629 Teh Marbuta
	{0xFE95, 0xFE96, 0xFE97, 0xFE98}, // U+062A Teh
	{0xFE99, 0xFE9A, 0xFE9B, 0xFE9C}, // U+062B Theh
	{0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0}, // U+062C Jeem
	{0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4}, // U+062D Hah
	{0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8}, // U+062E Khah
	{0xFEA9, 0xFEAA, 0x0000, 0x0000}, // U+062F Dal
	{0xFEAB, 0xFEAC, 0x0000, 0x0000}, // U+0630 Thal
	{0xFEAD, 0xFEAE, 0x0000, 0x0000}, // U+0631 Reh
	{0xFEAF, 0xFEB0, 0x0000, 0x0000}, // U+0632 Zain
	{0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4}, // U+0633 Seen
	{0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8}, // U+0634 Sheen
	{0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC}, // U+0635 Sad
	{0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0}, // U+0636 Dad
	{0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4}, // U+0637 Tah
	{0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8}, // U+0638 Zah
	{0xFEC9, 0xFECA, 0xFECB, 0xFECC}, // U+0639 Ain
	{0xFECD, 0xFECE, 0xFECF, 0xFED0}, // U+063A Ghain
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+063B Keheh With Two Dots Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+063C Keheh With Three Dots Below
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+063D Farsi Yeh With Inverted V
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+063E Farsi Yeh With Two Dots Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+063F Farsi Yeh With Three Dots Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0640 Arabic Tatweel
	{0xFED1, 0xFED2, 0xFED3, 0xFED4}, // U+0641 Feh
	{0xFED5, 0xFED6, 0xFED7, 0xFED8}, // U+0642 Qaf
	{0xFED9, 0xFEDA, 0xFEDB, 0xFEDC}, // U+0643 Kaf
	{0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0}, // U+0644 Lam
	{0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4}, // U+0645 Meem
	{0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8}, // U+0646 Noon
	{0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC}, // U+0647 Heh
	{0xFEED, 0xFEEE, 0x0000, 0x0000}, // U+0648 Waw
	{0xFEEF, 0xFEF0, 0xFBE8, 0xFBE9}, // U+0649 Alef Maksura
	{0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4}, // U+064A Yeh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+064B Arabic Fathatan
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+064C Arabic Dammatan
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+064D Arabic Kasratan
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+064E Arabic Fatha
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+064F Arabic Damma
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0650 Arabic Kasra
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0651 Arabic Shadda
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0652 Arabic Sukun
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0653 Arabic Maddah Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0654 Arabic Hamza Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0655 Arabic Hamza Below
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0656 Arabic Subscript Alef
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0657 Arabic Inverted Damma
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0658 Arabic Mark Noon Ghunna
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0659 Arabic Zwarakay
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+065A Arabic Vowel Sign Small V Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+065B Arabic Vowel Sign Inverted Small V Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+065C Arabic Vowel Sign Dot Below
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+065D Arabic Reversed Damma
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+065E Arabic Fatha With Two Dots
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+065F Arabic Wavy Hamza Below
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0660 Arabic-Indic Digit Zero
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0661 Arabic-Indic Digit One
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0662 Arabic-Indic Digit Two
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0663 Arabic-Indic Digit Three
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0664 Arabic-Indic Digit Four
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0665 Arabic-Indic Digit Five
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0666 Arabic-Indic Digit Six
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0667 Arabic-Indic Digit Seven
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0668 Arabic-Indic Digit Eight
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0669 Arabic-Indic Digit Nine
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+066A Arabic Percent Sign
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+066B Arabic Decimal Separator
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+066C Arabic Thousands Separator
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+066D Arabic Five Pointed Star
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+066E Dotless Beh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+066F Dotless Qaf
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0670 Superscript Alef
	{0xFB50, 0xFB51, 0x0000, 0x0000}, // U+0671 Alef Wasla
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0672 Alef With Wavy Hamza Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0673 Alef With Wavy Hamza Below
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0674 High Hamza
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0675 High Hamza Alef
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0676 High Hamza Waw
	{0xFBDD, 0x0000, 0x0000, 0x0000}, // U+0677 U With Hamza Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0678 High Hamza Yeh
	{0xFB66, 0xFB67, 0xFB68, 0xFB69}, // U+0679 Tteh
	{0xFB5E, 0xFB5F, 0xFB60, 0xFB61}, // U+067A Tteheh
	{0xFB52, 0xFB53, 0xFB54, 0xFB55}, // U+067B Beeh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+067C Teh With Ring
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+067D Teh With Three Dots Above Downwards
	{0xFB56, 0xFB57, 0xFB58, 0xFB59}, // U+067E Peh
	{0xFB62, 0xFB63, 0xFB64, 0xFB65}, // U+067F Teheh
	{0xFB5A, 0xFB5B, 0xFB5C, 0xFB5D}, // U+0680 Beheh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0681 Hah With Hamza Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0682 Hah With Two Dots Vertical Above
	{0xFB76, 0xFB77, 0xFB78, 0xFB79}, // U+0683 Nyeh
	{0xFB72, 0xFB73, 0xFB74, 0xFB75}, // U+0684 Dyeh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0685 Hah With Three Dots Above
	{0xFB7A, 0xFB7B, 0xFB7C, 0xFB7D}, // U+0686 Tcheh
	{0xFB7E, 0xFB7F, 0xFB80, 0xFB81}, // U+0687 Tcheheh
	{0xFB88, 0xFB89, 0x0000, 0x0000}, // U+0688 Ddal
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0689 Dal With Ring
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+068A Dal With Dot Below
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+068B Dal With Dot Below And Small Tah
	{0xFB84, 0xFB85, 0x0000, 0x0000}, // U+068C Dahal
	{0xFB82, 0xFB83, 0x0000, 0x0000}, // U+068D Ddahal
	{0xFB86, 0xFB87, 0x0000, 0x0000}, // U+068E Dul
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+068F Dal With Three Dots Above Downwards
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0690 Dal With Four Dots Above
	{0xFB8C, 0xFB8D, 0x0000, 0x0000}, // U+0691 Rreh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0692 Reh With Small V
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0693 Reh With Ring
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0694 Reh With Dot Below
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0695 Reh With Small V Below
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0696 Reh With Dot Below And Dot Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0697 Reh With Two Dots Above
	{0xFB8A, 0xFB8B, 0x0000, 0x0000}, // U+0698 Jeh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+0699 Reh With Four Dots Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+069A Seen With Dot Below And Dot Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+069B Seen With Three Dots Below
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+069C Seen With Three Dots Below And Three Dots Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+069D Sad With Two Dots Below
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+069E Sad With Three Dots Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+069F Tah With Three Dots Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06A0 Ain With Three Dots Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06A1 Dotless Feh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06A2 Feh With Dot Moved Below
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06A3 Feh With Dot Below
	{0xFB6A, 0xFB6B, 0xFB6C, 0xFB6D}, // U+06A4 Veh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06A5 Feh With Three Dots Below
	{0xFB6E, 0xFB6F, 0xFB70, 0xFB71}, // U+06A6 Peheh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06A7 Qaf With Dot Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06A8 Qaf With Three Dots Above
	{0xFB8E, 0xFB8F, 0xFB90, 0xFB91}, // U+06A9 Keheh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06AA Swash Kaf
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06AB Kaf With Ring
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06AC Kaf With Dot Above
	{0xFBD3, 0xFBD4, 0xFBD5, 0xFBD6}, // U+06AD Ng
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06AE Kaf With Three Dots Below
	{0xFB92, 0xFB93, 0xFB94, 0xFB95}, // U+06AF Gaf
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06B0 Gaf With Ring
	{0xFB9A, 0xFB9B, 0xFB9C, 0xFB9D}, // U+06B1 Ngoeh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06B2 Gaf With Two Dots Below
	{0xFB96, 0xFB97, 0xFB98, 0xFB99}, // U+06B3 Gueh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06B4 Gaf With Three Dots Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06B5 Lam With Small V
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06B6 Lam With Dot Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06B7 Lam With Three Dots Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06B8 Lam With Three Dots Below
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06B9 Noon With Dot Below
	{0xFB9E, 0xFB9F, 0x0000, 0x0000}, // U+06BA Noon Ghunna
	{0xFBA0, 0xFBA1, 0xFBA2, 0xFBA3}, // U+06BB Rnoon
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06BC Noon With Ring
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06BD Noon With Three Dots Above
	{0xFBAA, 0xFBAB, 0xFBAC, 0xFBAD}, // U+06BE Heh Doachashmee
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06BF Tcheh With Dot Above
	{0xFBA4, 0xFBA5, 0x0000, 0x0000}, // U+06C0 Heh With Yeh Above
	{0xFBA6, 0xFBA7, 0xFBA8, 0xFBA9}, // U+06C1 Heh Goal
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06C2 Heh Goal With Hamza Above
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06C3 Teh Marbuta Goal
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06C4 Waw With Ring
	{0xFBE0, 0xFBE1, 0x0000, 0x0000}, // U+06C5 Kirghiz Oe
	{0xFBD9, 0xFBDA, 0x0000, 0x0000}, // U+06C6 Oe
	{0xFBD7, 0xFBD8, 0x0000, 0x0000}, // U+06C7 U
	{0xFBDB, 0xFBDC, 0x0000, 0x0000}, // U+06C8 Yu
	{0xFBE2, 0xFBE3, 0x0000, 0x0000}, // U+06C9 Kirghiz Yu
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06CA Waw With Two Dots Above
	{0xFBDE, 0xFBDF, 0x0000, 0x0000}, // U+06CB Ve
	{0xFBFC, 0xFBFD, 0xFBFE, 0xFBFF}, // U+06CC Farsi Yeh
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06CD Yeh With Tail
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06CE Yeh With Small V
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06CF Waw With Dot Above
	{0xFBE4, 0xFBE5, 0xFBE6, 0xFBE7}, // U+06D0 E
	{0x0000, 0x0000, 0x0000, 0x0000}, // U+06D1 Yeh With Three Dots Below
	{0xFBAE, 0xFBAF, 0x0000, 0x0000}, // U+06D2 Yeh Barree
	{0xFBB0, 0xFBB1, 0x0000, 0x0000}, // U+06D3 Yeh Barree With Hamza Above
}
