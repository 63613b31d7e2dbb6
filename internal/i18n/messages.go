package i18n

type entry struct {
	key string
	pl  string
}

// entries maps English source strings to Polish.
var entries = []entry{
	// navigation
	{"Start", "Start"},
	{"What is it about?", "O co chodzi?"},
	{"About us", "O nas"},
	{"Foundations and organizations", "Fundacje i organizacje"},
	{"Donate", "Przekaż dary"},
	{"Contact", "Kontakt"},
	{"Log in", "Zaloguj"},
	{"Sign up", "Załóż konto"},
	{"Log out", "Wyloguj"},
	{"Profile", "Profil"},
	{"Hello %s", "Witaj %s"},

	// landing page
	{"Start helping!", "Zacznij pomagać!"},
	{"Give away things you no longer need to those in need", "Oddaj niechciane rzeczy w zaufane ręce"},
	{"bags donated", "oddanych worków"},
	{"supported institutions", "wspartych organizacji"},
	{"Who do we help?", "Komu pomagamy?"},
	{"Foundations", "Fundacje"},
	{"Non-governmental organizations", "Organizacje pozarządowe"},
	{"Local fundraisers", "Lokalne zbiórki"},
	{"No institutions yet.", "Brak organizacji."},
	{"Foundation", "Fundacja"},
	{"Non-governmental organization", "Organizacja pozarządowa"},
	{"Local fundraiser", "Lokalna zbiórka"},

	// donation form
	{"Mark what you want to donate:", "Zaznacz co chcesz oddać:"},
	{"Number of 60l bags:", "Liczba 60l worków:"},
	{"Choose the organization you want to help:", "Wybierz organizację, której chcesz pomóc:"},
	{"No institutions match the selected categories.", "Żadna organizacja nie pasuje do wybranych kategorii."},
	{"Pick-up address:", "Adres odbioru:"},
	{"Street", "Ulica"},
	{"City", "Miasto"},
	{"Zip code", "Kod pocztowy"},
	{"Phone number", "Numer telefonu"},
	{"Pick-up date:", "Termin odbioru:"},
	{"Date", "Data"},
	{"Time", "Godzina"},
	{"Notes for the courier", "Uwagi dla kuriera"},
	{"Submit", "Potwierdzam"},
	{"Thank you for sending the form. We will send you an email with all pick-up information.",
		"Dziękujemy za przesłanie formularza. Na maila prześlemy wszelkie informacje o odbiorze."},

	// authentication
	{"Username", "Nazwa użytkownika"},
	{"Password", "Hasło"},
	{"Repeat password", "Powtórz hasło"},
	{"First name", "Imię"},
	{"Last name", "Nazwisko"},
	{"Email", "Email"},
	{"Create an account", "Załóż konto"},
	{"Don't have an account?", "Nie masz konta?"},
	{"Already have an account?", "Masz już konto?"},
	{"Your account has been created", "Twoje konto zostało stworzone"},

	// profile
	{"Your donations", "Twoje dary"},
	{"Institution", "Organizacja"},
	{"Categories", "Kategorie"},
	{"Bags", "Worki"},
	{"Pick-up", "Odbiór"},
	{"Status", "Status"},
	{"Collected", "Odebrane"},
	{"Pending", "Oczekuje"},
	{"Mark as collected", "Oznacz jako odebrane"},
	{"You have no donations yet.", "Nie przekazałeś jeszcze darów."},

	// error pages
	{"Page not found", "Nie znaleziono strony"},
	{"Bad request", "Nieprawidłowe żądanie"},
	{"Something went wrong", "Coś poszło nie tak"},
	{"Back to home page", "Wróć na stronę główną"},

	// validation
	{"This field is required.", "To pole jest wymagane."},
	{"Ensure this value has at most %d characters.", "Upewnij się, że ta wartość ma co najwyżej %d znaków."},
	{"Ensure this value has at least %d characters.", "Upewnij się, że ta wartość ma co najmniej %d znaków."},
	{"Enter a whole number.", "Wpisz liczbę całkowitą."},
	{"Ensure this value is greater than or equal to 1.", "Upewnij się, że ta wartość jest większa lub równa 1."},
	{"Enter a valid email address.", "Wpisz poprawny adres email."},
	{"Enter a valid username. It may contain only letters, digits and @/./+/-/_.",
		"Wpisz poprawną nazwę użytkownika. Może zawierać tylko litery, cyfry i znaki @/./+/-/_."},
	{"A user with that username already exists.", "Użytkownik o tej nazwie już istnieje."},
	{"The two password fields didn't match.", "Hasła nie są identyczne."},
	{"Ensure this password has at most %d bytes.", "Upewnij się, że hasło ma co najwyżej %d bajtów."},
	{"Enter a zip code in the format 00-000.", "Wpisz kod pocztowy w formacie 00-000."},
	{"Enter a valid phone number.", "Wpisz poprawny numer telefonu."},
	{"Enter a valid date.", "Wpisz poprawną datę."},
	{"Enter a valid time.", "Wpisz poprawną godzinę."},
	{"The pick-up date cannot be in the past.", "Data odbioru nie może być w przeszłości."},
	{"Select a valid choice.", "Wybierz poprawną opcję."},
	{"Enter a valid value.", "Wpisz poprawną wartość."},
}
